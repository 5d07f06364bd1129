package grammar

// irregularParticiples maps infinitives to their irregular past participles,
// used by the perfect subjunctive tenses. Verbs absent here derive a regular
// participle (stem + -ado for -ar, stem + -ido for -er/-ir).
var irregularParticiples = map[string]string{
	"abrir":     "abierto",
	"cubrir":    "cubierto",
	"decir":     "dicho",
	"descubrir": "descubierto",
	"escribir":  "escrito",
	"hacer":     "hecho",
	"morir":     "muerto",
	"poner":     "puesto",
	"resolver":  "resuelto",
	"romper":    "roto",
	"ver":       "visto",
	"volver":    "vuelto",
}
