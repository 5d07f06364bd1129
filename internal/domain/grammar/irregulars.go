package grammar

import "github.com/lmoreno/subjuntivo-api/internal/domain"

// sixForms builds a person map from the six forms in canonical person order.
func sixForms(yo, tu, el, nos, vos, ellos string) map[domain.Person]string {
	return map[domain.Person]string{
		domain.PersonYo:       yo,
		domain.PersonTu:       tu,
		domain.PersonEl:       el,
		domain.PersonNosotros: nos,
		domain.PersonVosotros: vos,
		domain.PersonEllos:    ellos,
	}
}

// irregularVerbs holds full surface forms that override regular derivation for
// a specific tense. A verb listed here may still fall through to stem-changing
// or regular logic in tenses it has no entry for: querer is only irregular in
// the imperfect (quisiera), salir and conocer only in the present (salga,
// conozca).
var irregularVerbs = map[string]map[domain.Tense]map[domain.Person]string{
	"ser": {
		domain.TensePresent:     sixForms("sea", "seas", "sea", "seamos", "seáis", "sean"),
		domain.TenseImperfectRa: sixForms("fuera", "fueras", "fuera", "fuéramos", "fuerais", "fueran"),
		domain.TenseImperfectSe: sixForms("fuese", "fueses", "fuese", "fuésemos", "fueseis", "fuesen"),
	},
	"estar": {
		domain.TensePresent:     sixForms("esté", "estés", "esté", "estemos", "estéis", "estén"),
		domain.TenseImperfectRa: sixForms("estuviera", "estuvieras", "estuviera", "estuviéramos", "estuvierais", "estuvieran"),
		domain.TenseImperfectSe: sixForms("estuviese", "estuvieses", "estuviese", "estuviésemos", "estuvieseis", "estuviesen"),
	},
	"ir": {
		domain.TensePresent:     sixForms("vaya", "vayas", "vaya", "vayamos", "vayáis", "vayan"),
		domain.TenseImperfectRa: sixForms("fuera", "fueras", "fuera", "fuéramos", "fuerais", "fueran"),
		domain.TenseImperfectSe: sixForms("fuese", "fueses", "fuese", "fuésemos", "fueseis", "fuesen"),
	},
	"haber": {
		domain.TensePresent:     sixForms("haya", "hayas", "haya", "hayamos", "hayáis", "hayan"),
		domain.TenseImperfectRa: sixForms("hubiera", "hubieras", "hubiera", "hubiéramos", "hubierais", "hubieran"),
		domain.TenseImperfectSe: sixForms("hubiese", "hubieses", "hubiese", "hubiésemos", "hubieseis", "hubiesen"),
	},
	"saber": {
		domain.TensePresent:     sixForms("sepa", "sepas", "sepa", "sepamos", "sepáis", "sepan"),
		domain.TenseImperfectRa: sixForms("supiera", "supieras", "supiera", "supiéramos", "supierais", "supieran"),
		domain.TenseImperfectSe: sixForms("supiese", "supieses", "supiese", "supiésemos", "supieseis", "supiesen"),
	},
	"dar": {
		domain.TensePresent:     sixForms("dé", "des", "dé", "demos", "deis", "den"),
		domain.TenseImperfectRa: sixForms("diera", "dieras", "diera", "diéramos", "dierais", "dieran"),
		domain.TenseImperfectSe: sixForms("diese", "dieses", "diese", "diésemos", "dieseis", "diesen"),
	},
	"ver": {
		domain.TensePresent:     sixForms("vea", "veas", "vea", "veamos", "veáis", "vean"),
		domain.TenseImperfectRa: sixForms("viera", "vieras", "viera", "viéramos", "vierais", "vieran"),
		domain.TenseImperfectSe: sixForms("viese", "vieses", "viese", "viésemos", "vieseis", "viesen"),
	},
	"hacer": {
		domain.TensePresent:     sixForms("haga", "hagas", "haga", "hagamos", "hagáis", "hagan"),
		domain.TenseImperfectRa: sixForms("hiciera", "hicieras", "hiciera", "hiciéramos", "hicierais", "hicieran"),
		domain.TenseImperfectSe: sixForms("hiciese", "hicieses", "hiciese", "hiciésemos", "hicieseis", "hiciesen"),
	},
	"tener": {
		domain.TensePresent:     sixForms("tenga", "tengas", "tenga", "tengamos", "tengáis", "tengan"),
		domain.TenseImperfectRa: sixForms("tuviera", "tuvieras", "tuviera", "tuviéramos", "tuvierais", "tuvieran"),
		domain.TenseImperfectSe: sixForms("tuviese", "tuvieses", "tuviese", "tuviésemos", "tuvieseis", "tuviesen"),
	},
	"poner": {
		domain.TensePresent:     sixForms("ponga", "pongas", "ponga", "pongamos", "pongáis", "pongan"),
		domain.TenseImperfectRa: sixForms("pusiera", "pusieras", "pusiera", "pusiéramos", "pusierais", "pusieran"),
		domain.TenseImperfectSe: sixForms("pusiese", "pusieses", "pusiese", "pusiésemos", "pusieseis", "pusiesen"),
	},
	"decir": {
		domain.TensePresent:     sixForms("diga", "digas", "diga", "digamos", "digáis", "digan"),
		domain.TenseImperfectRa: sixForms("dijera", "dijeras", "dijera", "dijéramos", "dijerais", "dijeran"),
		domain.TenseImperfectSe: sixForms("dijese", "dijeses", "dijese", "dijésemos", "dijeseis", "dijesen"),
	},
	"venir": {
		domain.TensePresent:     sixForms("venga", "vengas", "venga", "vengamos", "vengáis", "vengan"),
		domain.TenseImperfectRa: sixForms("viniera", "vinieras", "viniera", "viniéramos", "vinierais", "vinieran"),
		domain.TenseImperfectSe: sixForms("viniese", "vinieses", "viniese", "viniésemos", "vinieseis", "viniesen"),
	},
	"traer": {
		domain.TensePresent:     sixForms("traiga", "traigas", "traiga", "traigamos", "traigáis", "traigan"),
		domain.TenseImperfectRa: sixForms("trajera", "trajeras", "trajera", "trajéramos", "trajerais", "trajeran"),
		domain.TenseImperfectSe: sixForms("trajese", "trajeses", "trajese", "trajésemos", "trajeseis", "trajesen"),
	},
	// querer is stem-changing (e→ie) in the present subjunctive but takes the
	// irregular quis- stem in the imperfect.
	"querer": {
		domain.TenseImperfectRa: sixForms("quisiera", "quisieras", "quisiera", "quisiéramos", "quisierais", "quisieran"),
		domain.TenseImperfectSe: sixForms("quisiese", "quisieses", "quisiese", "quisiésemos", "quisieseis", "quisiesen"),
	},
	// poder is stem-changing (o→ue) in the present subjunctive but takes the
	// irregular pud- stem in the imperfect.
	"poder": {
		domain.TenseImperfectRa: sixForms("pudiera", "pudieras", "pudiera", "pudiéramos", "pudierais", "pudieran"),
		domain.TenseImperfectSe: sixForms("pudiese", "pudieses", "pudiese", "pudiésemos", "pudieseis", "pudiesen"),
	},
	// salir and conocer are irregular only in the present; their imperfect
	// forms derive regularly.
	"salir": {
		domain.TensePresent: sixForms("salga", "salgas", "salga", "salgamos", "salgáis", "salgan"),
	},
	"conocer": {
		domain.TensePresent: sixForms("conozca", "conozcas", "conozca", "conozcamos", "conozcáis", "conozcan"),
	},
}

// frequentIrregulars are the eight high-frequency irregular verbs the
// intermediate difficulty tier draws from.
var frequentIrregulars = []string{
	"ser", "estar", "ir", "haber", "tener", "hacer", "decir", "venir",
}
