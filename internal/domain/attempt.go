package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attempt-specific validation errors
var (
	// ErrAttemptUserIDEmpty is returned when an attempt has no user ID.
	ErrAttemptUserIDEmpty = errors.New("attempt user ID cannot be empty")

	// ErrAttemptVerbEmpty is returned when an attempt has no verb.
	ErrAttemptVerbEmpty = errors.New("attempt verb cannot be empty")

	// ErrAttemptResponseTime is returned when the response time is negative.
	ErrAttemptResponseTime = errors.New("attempt response time cannot be negative")
)

// Attempt is one recorded answer to a practice item. Attempts are append-only;
// the difficulty manager reconstructs its sliding window from the most recent
// ones.
type Attempt struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Verb           string    `json:"verb"`
	Tense          Tense     `json:"tense"`
	Person         Person    `json:"person"`
	UserAnswer     string    `json:"user_answer"`
	IsCorrect      bool      `json:"is_correct"`
	ErrorType      ErrorType `json:"error_type,omitempty"`
	ResponseTimeMs int       `json:"response_time_ms"`
	DifficultyFelt int       `json:"difficulty_felt,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAttempt creates a validated attempt record stamped with the current time.
func NewAttempt(userID uuid.UUID, key CardKey, userAnswer string, correct bool, errorType ErrorType, responseTimeMs, difficultyFelt int) (*Attempt, error) {
	attempt := &Attempt{
		ID:             uuid.New(),
		UserID:         userID,
		Verb:           key.Verb,
		Tense:          key.Tense,
		Person:         key.Person,
		UserAnswer:     userAnswer,
		IsCorrect:      correct,
		ErrorType:      errorType,
		ResponseTimeMs: responseTimeMs,
		DifficultyFelt: difficultyFelt,
		CreatedAt:      time.Now().UTC(),
	}

	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Validate checks the attempt's invariants.
func (a *Attempt) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrAttemptUserIDEmpty
	}
	if a.Verb == "" {
		return ErrAttemptVerbEmpty
	}
	if !a.Tense.IsValid() {
		return ErrInvalidTense
	}
	if !a.Person.IsValid() {
		return ErrInvalidPerson
	}
	if a.ResponseTimeMs < 0 {
		return ErrAttemptResponseTime
	}
	return nil
}

// Key returns the conjugation atom this attempt belongs to.
func (a *Attempt) Key() CardKey {
	return CardKey{Verb: a.Verb, Tense: a.Tense, Person: a.Person}
}
