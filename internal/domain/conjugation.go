package domain

// ConjugationResult is the output of conjugating a single (verb, tense, person)
// cell. It is a pure function output with no identity or lifecycle; the engine
// recomputes it on every call.
type ConjugationResult struct {
	Conjugation        string      `json:"conjugation"`
	IsIrregular        bool        `json:"is_irregular"`
	IsStemChanging     bool        `json:"is_stem_changing"`
	StemChangePattern  StemPattern `json:"stem_change_pattern,omitempty"`
	HasSpellingChange  bool        `json:"has_spelling_change"`
	SpellingChangeRule string      `json:"spelling_change_rule,omitempty"`
}

// ValidationResult describes how a learner's free-text answer compared to the
// correct conjugation. ErrorType is empty when the answer is correct.
type ValidationResult struct {
	IsCorrect     bool      `json:"is_correct"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Verb          string    `json:"verb"`
	Tense         Tense     `json:"tense"`
	Person        Person    `json:"person"`
	ErrorType     ErrorType `json:"error_type,omitempty"`
	Suggestions   []string  `json:"suggestions,omitempty"`
}

// VerbInfo summarizes a verb's classification across all tenses. It is used by
// the exercise generator and feedback generator to phrase explanations.
type VerbInfo struct {
	Verb                string      `json:"verb"`
	Class               VerbClass   `json:"verb_class"`
	IsIrregular         bool        `json:"is_irregular"`
	IrregularTenses     []Tense     `json:"irregular_tenses,omitempty"`
	IsStemChanging      bool        `json:"is_stem_changing"`
	StemChangePattern   StemPattern `json:"stem_change_pattern,omitempty"`
	SpellingChangeRules []string    `json:"spelling_change_rules,omitempty"`
}
