package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for ReviewCard
var (
	ErrEmptyCardUserID   = errors.New("review card user ID cannot be empty")
	ErrEmptyCardVerb     = errors.New("review card verb cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
)

// InitialEaseFactor is the SM-2 starting ease factor for a new card.
const InitialEaseFactor = 2.5

// MinEaseFactor is the SM-2 lower bound on the ease factor.
const MinEaseFactor = 1.3

// CardKey identifies the conjugation atom a ReviewCard tracks. Using a
// composite struct key (rather than a concatenated string) makes collisions
// impossible and lets the key be used directly in maps.
type CardKey struct {
	Verb   string `json:"verb"`
	Tense  Tense  `json:"tense"`
	Person Person `json:"person"`
}

// ReviewCard tracks a learner's spaced repetition state for one
// (verb, tense, person) atom. It implements the SM-2 memory model: the card is
// created lazily on the first attempt, mutated after every review, and never
// deleted. The scheduler is its only writer.
type ReviewCard struct {
	UserID         uuid.UUID `json:"user_id"`
	Key            CardKey   `json:"key"`
	EaseFactor     float64   `json:"ease_factor"`    // SM-2 ease factor, floored at 1.3
	IntervalDays   int       `json:"interval_days"`  // Current interval in days
	Repetitions    int       `json:"repetitions"`    // Consecutive successful recalls; resets on failure
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	NextReviewAt   time.Time `json:"next_review_at"`
	TotalReviews   int       `json:"total_reviews"`
	CorrectReviews int       `json:"correct_reviews"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewReviewCard creates a card for a learner and conjugation atom with SM-2
// initial values. The card is due immediately.
func NewReviewCard(userID uuid.UUID, key CardKey) (*ReviewCard, error) {
	now := time.Now().UTC()
	card := &ReviewCard{
		UserID:       userID,
		Key:          key,
		EaseFactor:   InitialEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now, // available for review immediately
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the ReviewCard has valid data.
// Returns an error if any field fails validation.
func (c *ReviewCard) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrEmptyCardUserID
	}

	if c.Key.Verb == "" {
		return ErrEmptyCardVerb
	}

	if !c.Key.Tense.IsValid() {
		return ErrInvalidTense
	}

	if !c.Key.Person.IsValid() {
		return ErrInvalidPerson
	}

	if c.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}

// Accuracy returns the card's lifetime correct-review ratio, or 0 for a card
// with no reviews.
func (c *ReviewCard) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectReviews) / float64(c.TotalReviews)
}
