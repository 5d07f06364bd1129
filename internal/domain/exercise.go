package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Exercise-specific validation errors
var (
	// ErrExerciseVerbEmpty is returned when an exercise has no verb.
	ErrExerciseVerbEmpty = errors.New("exercise verb cannot be empty")

	// ErrExerciseTemplateInvalid is returned when a sentence template does not
	// contain exactly one blank marker.
	ErrExerciseTemplateInvalid = errors.New("exercise template must contain exactly one blank marker")

	// ErrExerciseDistractors is returned when distractors contain the correct
	// answer, a duplicate, or more than three entries.
	ErrExerciseDistractors = errors.New("exercise distractors must be at most 3 distinct forms excluding the correct answer")
)

// BlankMarker is the placeholder inside a sentence template where the
// conjugated verb belongs.
const BlankMarker = "___"

// Exercise is a single practice item composed from the grammar rules. It has
// no independent lifecycle; the caller decides whether and how to persist it.
type Exercise struct {
	ID               uuid.UUID       `json:"id"`
	Type             ExerciseType    `json:"type"`
	Verb             string          `json:"verb"`
	Tense            Tense           `json:"tense"`
	Person           Person          `json:"person"`
	TriggerPhrase    string          `json:"trigger_phrase"`
	TriggerCategory  TriggerCategory `json:"trigger_category"`
	SentenceTemplate string          `json:"sentence_template"`
	CorrectAnswer    string          `json:"correct_answer"`
	Difficulty       Difficulty      `json:"difficulty"`
	Context          string          `json:"context"`
	Hints            []string        `json:"hints"`
	Distractors      []string        `json:"distractors,omitempty"`
}

// Validate checks the exercise's structural invariants.
// Returns an error if any field fails validation.
func (e *Exercise) Validate() error {
	if e.Verb == "" {
		return ErrExerciseVerbEmpty
	}

	if !e.Tense.IsValid() {
		return ErrInvalidTense
	}

	if !e.Person.IsValid() {
		return ErrInvalidPerson
	}

	if strings.Count(e.SentenceTemplate, BlankMarker) != 1 {
		return ErrExerciseTemplateInvalid
	}

	if len(e.Distractors) > 3 {
		return ErrExerciseDistractors
	}
	seen := make(map[string]bool, len(e.Distractors))
	for _, d := range e.Distractors {
		if d == e.CorrectAnswer || seen[d] {
			return ErrExerciseDistractors
		}
		seen[d] = true
	}

	return nil
}
