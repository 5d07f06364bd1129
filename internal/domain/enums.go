package domain

// Tense identifies one of the supported subjunctive tenses.
type Tense string

// Supported subjunctive tenses.
const (
	TensePresent        Tense = "present_subjunctive"
	TenseImperfectRa    Tense = "imperfect_subjunctive_ra"
	TenseImperfectSe    Tense = "imperfect_subjunctive_se"
	TensePresentPerfect Tense = "present_perfect_subjunctive"
	TensePluperfect     Tense = "pluperfect_subjunctive"
)

// Tenses lists all supported tenses in canonical order.
func Tenses() []Tense {
	return []Tense{
		TensePresent,
		TenseImperfectRa,
		TenseImperfectSe,
		TensePresentPerfect,
		TensePluperfect,
	}
}

// IsValid reports whether the tense is one of the supported subjunctive tenses.
func (t Tense) IsValid() bool {
	switch t {
	case TensePresent, TenseImperfectRa, TenseImperfectSe,
		TensePresentPerfect, TensePluperfect:
		return true
	default:
		return false
	}
}

// IsPerfect reports whether the tense is a compound (haber + participle) tense.
func (t Tense) IsPerfect() bool {
	return t == TensePresentPerfect || t == TensePluperfect
}

// Person identifies a grammatical person.
type Person string

// The six grammatical persons.
const (
	PersonYo       Person = "yo"
	PersonTu       Person = "tú"
	PersonEl       Person = "él/ella/usted"
	PersonNosotros Person = "nosotros/nosotras"
	PersonVosotros Person = "vosotros/vosotras"
	PersonEllos    Person = "ellos/ellas/ustedes"
)

// Persons lists all grammatical persons in canonical order.
func Persons() []Person {
	return []Person{
		PersonYo,
		PersonTu,
		PersonEl,
		PersonNosotros,
		PersonVosotros,
		PersonEllos,
	}
}

// IsValid reports whether the person is one of the six grammatical persons.
func (p Person) IsValid() bool {
	switch p {
	case PersonYo, PersonTu, PersonEl, PersonNosotros, PersonVosotros, PersonEllos:
		return true
	default:
		return false
	}
}

// VerbClass classifies a verb by its conjugation behavior. It is derived from
// the infinitive's ending plus membership in the irregular and stem-changing
// tables, and is never stored.
type VerbClass string

// Verb classes.
const (
	VerbClassRegularAr    VerbClass = "regular-ar"
	VerbClassRegularEr    VerbClass = "regular-er"
	VerbClassRegularIr    VerbClass = "regular-ir"
	VerbClassIrregular    VerbClass = "irregular"
	VerbClassStemChanging VerbClass = "stem-changing"
)

// StemPattern identifies a stem-changing vowel mutation pattern.
type StemPattern string

// Stem-changing patterns.
const (
	StemPatternEIe StemPattern = "e→ie"
	StemPatternOUe StemPattern = "o→ue"
	StemPatternEI  StemPattern = "e→i"
)

// Difficulty is a learner's difficulty tier.
type Difficulty string

// Difficulty tiers, ordered from easiest to hardest.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether the difficulty is a recognized tier.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// ExerciseType distinguishes the presentation format of an exercise.
type ExerciseType string

// Exercise types.
const (
	ExerciseTypeFillInBlank    ExerciseType = "fill_in_blank"
	ExerciseTypeMultipleChoice ExerciseType = "multiple_choice"
)

// TriggerCategory is one of the six WEIRDO categories of subjunctive triggers.
type TriggerCategory string

// WEIRDO trigger categories.
const (
	CategoryWishes          TriggerCategory = "Wishes"
	CategoryEmotions        TriggerCategory = "Emotions"
	CategoryImpersonal      TriggerCategory = "Impersonal_Expressions"
	CategoryRecommendations TriggerCategory = "Recommendations"
	CategoryDoubtDenial     TriggerCategory = "Doubt_Denial"
	CategoryOjala           TriggerCategory = "Ojalá"
)

// TriggerCategories lists all WEIRDO categories in mnemonic order.
func TriggerCategories() []TriggerCategory {
	return []TriggerCategory{
		CategoryWishes,
		CategoryEmotions,
		CategoryImpersonal,
		CategoryRecommendations,
		CategoryDoubtDenial,
		CategoryOjala,
	}
}

// IsValid reports whether the category is one of the six WEIRDO categories.
func (c TriggerCategory) IsValid() bool {
	switch c {
	case CategoryWishes, CategoryEmotions, CategoryImpersonal,
		CategoryRecommendations, CategoryDoubtDenial, CategoryOjala:
		return true
	default:
		return false
	}
}

// ErrorType classifies why a learner's answer was wrong.
type ErrorType string

// Answer error classifications, in the priority order the validator applies them.
const (
	ErrorTypeMoodConfusion      ErrorType = "mood_confusion"
	ErrorTypeWrongPerson        ErrorType = "wrong_person"
	ErrorTypeWrongTense         ErrorType = "wrong_tense"
	ErrorTypeSpellingError      ErrorType = "spelling_error"
	ErrorTypeStemChangeError    ErrorType = "stem_change_error"
	ErrorTypeSpellingChangeErr  ErrorType = "spelling_change_error"
	ErrorTypeWrongEnding        ErrorType = "wrong_ending"
	ErrorTypeUnknown            ErrorType = "unknown_error"
	ErrorTypeValidationInternal ErrorType = "validation_error"
)
