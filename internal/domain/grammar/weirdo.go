package grammar

import "github.com/lmoreno/subjuntivo-api/internal/domain"

// Template is a sentence frame with exactly one blank marker and the
// grammatical person the blank must be conjugated for.
type Template struct {
	Text   string
	Person domain.Person
}

// Category is one WEIRDO catalog entry: the trigger phrases that force the
// subjunctive, sentence templates to practice them, worked examples, and a
// learner-facing description.
type Category struct {
	Description string
	Triggers    []string
	Templates   []Template
	Examples    []string
}

// weirdoCatalog holds the six WEIRDO trigger categories.
var weirdoCatalog = map[domain.TriggerCategory]Category{
	domain.CategoryWishes: {
		Description: "Verbs of wishing and wanting require the subjunctive in the subordinate clause.",
		Triggers: []string{
			"quiero que", "espero que", "deseo que", "prefiero que", "necesito que",
		},
		Templates: []Template{
			{Text: "Quiero que tú ___ conmigo mañana.", Person: domain.PersonTu},
			{Text: "Espero que ellos ___ a tiempo.", Person: domain.PersonEllos},
			{Text: "Deseo que usted ___ un buen viaje.", Person: domain.PersonEl},
			{Text: "Prefiero que nosotros ___ juntos.", Person: domain.PersonNosotros},
			{Text: "Necesito que vosotros ___ la verdad.", Person: domain.PersonVosotros},
		},
		Examples: []string{
			"Quiero que hables con ella.",
			"Espero que tengan éxito.",
		},
	},
	domain.CategoryEmotions: {
		Description: "Expressions of emotion about another subject's action take the subjunctive.",
		Triggers: []string{
			"me alegra que", "me molesta que", "temo que", "me sorprende que", "siento que",
		},
		Templates: []Template{
			{Text: "Me alegra que tú ___ aquí.", Person: domain.PersonTu},
			{Text: "Temo que él ___ demasiado tarde.", Person: domain.PersonEl},
			{Text: "Me sorprende que ellos ___ tanto.", Person: domain.PersonEllos},
			{Text: "Siento que yo no ___ más tiempo.", Person: domain.PersonYo},
		},
		Examples: []string{
			"Me alegra que estés aquí.",
			"Temo que llegue tarde.",
		},
	},
	domain.CategoryImpersonal: {
		Description: "Impersonal expressions of judgment or possibility require the subjunctive.",
		Triggers: []string{
			"es importante que", "es necesario que", "es posible que", "es mejor que", "es raro que",
		},
		Templates: []Template{
			{Text: "Es importante que tú ___ todos los días.", Person: domain.PersonTu},
			{Text: "Es necesario que nosotros ___ pronto.", Person: domain.PersonNosotros},
			{Text: "Es posible que ella ___ mañana.", Person: domain.PersonEl},
			{Text: "Es mejor que ellos ___ ahora.", Person: domain.PersonEllos},
		},
		Examples: []string{
			"Es importante que estudies.",
			"Es posible que llueva.",
		},
	},
	domain.CategoryRecommendations: {
		Description: "Verbs of advice, suggestion, and request require the subjunctive.",
		Triggers: []string{
			"recomiendo que", "sugiero que", "aconsejo que", "pido que", "insisto en que",
		},
		Templates: []Template{
			{Text: "Recomiendo que tú ___ este libro.", Person: domain.PersonTu},
			{Text: "Sugiero que usted ___ temprano.", Person: domain.PersonEl},
			{Text: "Aconsejo que vosotros ___ más agua.", Person: domain.PersonVosotros},
			{Text: "Pido que ellos ___ en silencio.", Person: domain.PersonEllos},
		},
		Examples: []string{
			"Recomiendo que leas este libro.",
			"Sugiero que llegue temprano.",
		},
	},
	domain.CategoryDoubtDenial: {
		Description: "Expressions of doubt or denial about a claim take the subjunctive.",
		Triggers: []string{
			"dudo que", "no creo que", "niego que", "no es cierto que", "no pienso que",
		},
		Templates: []Template{
			{Text: "Dudo que él ___ la respuesta.", Person: domain.PersonEl},
			{Text: "No creo que tú ___ razón.", Person: domain.PersonTu},
			{Text: "Niego que nosotros ___ eso.", Person: domain.PersonNosotros},
			{Text: "No es cierto que ellos ___ aquí.", Person: domain.PersonEllos},
		},
		Examples: []string{
			"Dudo que sepa la respuesta.",
			"No creo que tengas razón.",
		},
	},
	domain.CategoryOjala: {
		Description: "Ojalá (from Arabic 'inshallah') always triggers the subjunctive, with or without que.",
		Triggers: []string{
			"ojalá", "ojalá que",
		},
		Templates: []Template{
			{Text: "Ojalá que tú ___ pronto.", Person: domain.PersonTu},
			{Text: "Ojalá yo ___ más suerte.", Person: domain.PersonYo},
			{Text: "Ojalá que nosotros ___ el examen.", Person: domain.PersonNosotros},
			{Text: "Ojalá ellos ___ mañana.", Person: domain.PersonEllos},
		},
		Examples: []string{
			"Ojalá que vengas pronto.",
			"Ojalá tuviera más tiempo.",
		},
	},
}

// ContextBucket names one of the four situational context groups exercises
// draw their scene-setting strings from.
type ContextBucket string

// Context buckets.
const (
	BucketPlanning ContextBucket = "planning"
	BucketEmotions ContextBucket = "emotions"
	BucketAdvice   ContextBucket = "advice"
	BucketSocial   ContextBucket = "social"
)

// CategoryBucket maps each WEIRDO category to its context bucket.
var CategoryBucket = map[domain.TriggerCategory]ContextBucket{
	domain.CategoryWishes:          BucketPlanning,
	domain.CategoryEmotions:        BucketEmotions,
	domain.CategoryImpersonal:      BucketAdvice,
	domain.CategoryRecommendations: BucketAdvice,
	domain.CategoryDoubtDenial:     BucketSocial,
	domain.CategoryOjala:           BucketPlanning,
}

// BucketContexts holds the scene-setting strings for each bucket.
var BucketContexts = map[ContextBucket][]string{
	BucketPlanning: {
		"Estás organizando un viaje con tus amigos.",
		"Hablas de tus planes para el próximo año.",
		"Tu familia prepara una fiesta de cumpleaños.",
	},
	BucketEmotions: {
		"Le cuentas a un amigo cómo te sientes hoy.",
		"Reaccionas a una noticia inesperada.",
		"Hablas de algo que te preocupa últimamente.",
	},
	BucketAdvice: {
		"Un amigo te pide consejo sobre su trabajo.",
		"Tu profesor habla de cómo mejorar en clase.",
		"Le das recomendaciones a un turista en tu ciudad.",
	},
	BucketSocial: {
		"Discutes un rumor con tus compañeros.",
		"Conversas sobre las noticias en una cena.",
		"Debates una opinión con tu vecino.",
	},
}
