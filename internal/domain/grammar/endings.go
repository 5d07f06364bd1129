package grammar

import "github.com/lmoreno/subjuntivo-api/internal/domain"

// regularEndings maps (tense, ending class, person) to the regular subjunctive
// ending attached to the infinitive stem. The perfect tenses have no row here:
// they are assembled from a conjugated form of haber plus a past participle.
var regularEndings = map[domain.Tense]map[string]map[domain.Person]string{
	domain.TensePresent: {
		"ar": {
			domain.PersonYo:       "e",
			domain.PersonTu:       "es",
			domain.PersonEl:       "e",
			domain.PersonNosotros: "emos",
			domain.PersonVosotros: "éis",
			domain.PersonEllos:    "en",
		},
		"er": {
			domain.PersonYo:       "a",
			domain.PersonTu:       "as",
			domain.PersonEl:       "a",
			domain.PersonNosotros: "amos",
			domain.PersonVosotros: "áis",
			domain.PersonEllos:    "an",
		},
		"ir": {
			domain.PersonYo:       "a",
			domain.PersonTu:       "as",
			domain.PersonEl:       "a",
			domain.PersonNosotros: "amos",
			domain.PersonVosotros: "áis",
			domain.PersonEllos:    "an",
		},
	},
	domain.TenseImperfectRa: {
		"ar": {
			domain.PersonYo:       "ara",
			domain.PersonTu:       "aras",
			domain.PersonEl:       "ara",
			domain.PersonNosotros: "áramos",
			domain.PersonVosotros: "arais",
			domain.PersonEllos:    "aran",
		},
		"er": {
			domain.PersonYo:       "iera",
			domain.PersonTu:       "ieras",
			domain.PersonEl:       "iera",
			domain.PersonNosotros: "iéramos",
			domain.PersonVosotros: "ierais",
			domain.PersonEllos:    "ieran",
		},
		"ir": {
			domain.PersonYo:       "iera",
			domain.PersonTu:       "ieras",
			domain.PersonEl:       "iera",
			domain.PersonNosotros: "iéramos",
			domain.PersonVosotros: "ierais",
			domain.PersonEllos:    "ieran",
		},
	},
	domain.TenseImperfectSe: {
		"ar": {
			domain.PersonYo:       "ase",
			domain.PersonTu:       "ases",
			domain.PersonEl:       "ase",
			domain.PersonNosotros: "ásemos",
			domain.PersonVosotros: "aseis",
			domain.PersonEllos:    "asen",
		},
		"er": {
			domain.PersonYo:       "iese",
			domain.PersonTu:       "ieses",
			domain.PersonEl:       "iese",
			domain.PersonNosotros: "iésemos",
			domain.PersonVosotros: "ieseis",
			domain.PersonEllos:    "iesen",
		},
		"ir": {
			domain.PersonYo:       "iese",
			domain.PersonTu:       "ieses",
			domain.PersonEl:       "iese",
			domain.PersonNosotros: "iésemos",
			domain.PersonVosotros: "ieseis",
			domain.PersonEllos:    "iesen",
		},
	},
}

// presentIndicativeEndings is a deliberately simplified present-indicative
// table used only for mood-confusion detection. Only the singular persons are
// checked; the common endings cover the overwhelming majority of learner
// mood slips (hablo for hable, comes for comas).
var presentIndicativeEndings = map[string]map[domain.Person]string{
	"ar": {
		domain.PersonYo: "o",
		domain.PersonTu: "as",
		domain.PersonEl: "a",
	},
	"er": {
		domain.PersonYo: "o",
		domain.PersonTu: "es",
		domain.PersonEl: "e",
	},
	"ir": {
		domain.PersonYo: "o",
		domain.PersonTu: "es",
		domain.PersonEl: "e",
	},
}
