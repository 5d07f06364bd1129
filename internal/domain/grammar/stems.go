package grammar

import "github.com/lmoreno/subjuntivo-api/internal/domain"

// StemChange describes one stem-changing verb: the mutated present stem, the
// verb's ending class, and (for the two o→u verbs) a special imperfect stem.
type StemChange struct {
	// Stem is the mutated stem used in the present subjunctive, e.g. "piens"
	// for pensar.
	Stem string

	// Class is the ending class "ar", "er", or "ir". The class decides where
	// the change is suppressed: -ar/-er verbs revert to the infinitive stem in
	// nosotros/vosotros, -ir verbs keep the change in all six persons.
	Class string

	// ImperfectStem, when non-empty, replaces the infinitive stem in both
	// imperfect subjunctive tenses. Only dormir (durm-) and morir (mur-)
	// carry one; every other stem-changer conjugates the imperfect from the
	// plain infinitive stem.
	ImperfectStem string
}

// stemChangingVerbs is keyed by pattern, then infinitive.
var stemChangingVerbs = map[domain.StemPattern]map[string]StemChange{
	domain.StemPatternEIe: {
		"pensar":    {Stem: "piens", Class: "ar"},
		"cerrar":    {Stem: "cierr", Class: "ar"},
		"empezar":   {Stem: "empiez", Class: "ar"},
		"despertar": {Stem: "despiert", Class: "ar"},
		"querer":    {Stem: "quier", Class: "er"},
		"entender":  {Stem: "entiend", Class: "er"},
		"perder":    {Stem: "pierd", Class: "er"},
		"sentir":    {Stem: "sient", Class: "ir"},
		"preferir":  {Stem: "prefier", Class: "ir"},
		"mentir":    {Stem: "mient", Class: "ir"},
	},
	domain.StemPatternOUe: {
		"contar":    {Stem: "cuent", Class: "ar"},
		"encontrar": {Stem: "encuentr", Class: "ar"},
		"mostrar":   {Stem: "muestr", Class: "ar"},
		"recordar":  {Stem: "recuerd", Class: "ar"},
		"almorzar":  {Stem: "almuerz", Class: "ar"},
		"poder":     {Stem: "pued", Class: "er"},
		"volver":    {Stem: "vuelv", Class: "er"},
		"dormir":    {Stem: "duerm", Class: "ir", ImperfectStem: "durm"},
		"morir":     {Stem: "muer", Class: "ir", ImperfectStem: "mur"},
	},
	domain.StemPatternEI: {
		"pedir":     {Stem: "pid", Class: "ir"},
		"servir":    {Stem: "sirv", Class: "ir"},
		"repetir":   {Stem: "repit", Class: "ir"},
		"vestir":    {Stem: "vist", Class: "ir"},
		"seguir":    {Stem: "sigu", Class: "ir"},
		"conseguir": {Stem: "consigu", Class: "ir"},
	},
}
