package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// ReviewCardStore defines the interface for review card persistence. Cards
// are keyed by (user, verb, tense, person); concurrent updates to the same
// learner's card are serialized with GetForUpdate inside a transaction.
type ReviewCardStore interface {
	// Get retrieves the card for a conjugation atom.
	// Returns ErrCardNotFound if the card does not exist.
	Get(ctx context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error)

	// GetForUpdate retrieves the card with a row lock, blocking concurrent
	// writers until the surrounding transaction completes. Must be called on
	// a store bound to a transaction via WithTx.
	// Returns ErrCardNotFound if the card does not exist.
	GetForUpdate(ctx context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error)

	// Upsert inserts the card or replaces the existing row for its key.
	Upsert(ctx context.Context, card *domain.ReviewCard) error

	// ListByUser retrieves every card belonging to a learner.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewCard, error)

	// ListDue retrieves the learner's cards due at now, most overdue first.
	// A limit <= 0 means no truncation.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewCard, error)

	// WithTx returns a new ReviewCardStore instance bound to the transaction.
	WithTx(tx *sql.Tx) ReviewCardStore
}

// AttemptStore defines the interface for the append-only attempt log.
type AttemptStore interface {
	// Create appends one attempt record.
	Create(ctx context.Context, attempt *domain.Attempt) error

	// ListRecentByUser retrieves the learner's most recent attempts, newest
	// first, up to limit. The difficulty manager rebuilds its sliding window
	// from this.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Attempt, error)

	// WithTx returns a new AttemptStore instance bound to the transaction.
	WithTx(tx *sql.Tx) AttemptStore
}
