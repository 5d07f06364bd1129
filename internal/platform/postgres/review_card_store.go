package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// PostgresReviewCardStore implements the store.ReviewCardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewCardStore creates a new PostgreSQL implementation of the
// ReviewCardStore interface. If logger is nil, a default logger will be used.
func NewPostgresReviewCardStore(db store.DBTX, logger *slog.Logger) *PostgresReviewCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_card_store")),
	}
}

// Ensure PostgresReviewCardStore implements store.ReviewCardStore interface
var _ store.ReviewCardStore = (*PostgresReviewCardStore)(nil)

const reviewCardColumns = `
	user_id, verb, tense, person, ease_factor, interval_days, repetitions,
	last_reviewed_at, next_review_at, total_reviews, correct_reviews,
	created_at, updated_at
`

// Get implements store.ReviewCardStore.Get.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresReviewCardStore) Get(ctx context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error) {
	query := `
		SELECT ` + reviewCardColumns + `
		FROM review_cards
		WHERE user_id = $1 AND verb = $2 AND tense = $3 AND person = $4
	`
	return s.getOne(ctx, query, userID, key)
}

// GetForUpdate implements store.ReviewCardStore.GetForUpdate. The FOR UPDATE
// row lock serializes concurrent reviews of the same card; the caller must
// run this inside a transaction.
func (s *PostgresReviewCardStore) GetForUpdate(ctx context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error) {
	query := `
		SELECT ` + reviewCardColumns + `
		FROM review_cards
		WHERE user_id = $1 AND verb = $2 AND tense = $3 AND person = $4
		FOR UPDATE
	`
	return s.getOne(ctx, query, userID, key)
}

func (s *PostgresReviewCardStore) getOne(ctx context.Context, query string, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, userID, key.Verb, key.Tense, key.Person)
	card, err := scanReviewCard(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review card not found",
				slog.String("user_id", userID.String()),
				slog.String("verb", key.Verb))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get review card",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("verb", key.Verb))
		return nil, MapError(err)
	}

	return card, nil
}

// Upsert implements store.ReviewCardStore.Upsert. The composite primary key
// (user_id, verb, tense, person) makes the insert idempotent per atom.
func (s *PostgresReviewCardStore) Upsert(ctx context.Context, card *domain.ReviewCard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("review card validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", card.UserID.String()),
			slog.String("verb", card.Key.Verb))
		return err
	}

	query := `
		INSERT INTO review_cards (` + reviewCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id, verb, tense, person) DO UPDATE SET
			ease_factor = EXCLUDED.ease_factor,
			interval_days = EXCLUDED.interval_days,
			repetitions = EXCLUDED.repetitions,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			next_review_at = EXCLUDED.next_review_at,
			total_reviews = EXCLUDED.total_reviews,
			correct_reviews = EXCLUDED.correct_reviews,
			updated_at = EXCLUDED.updated_at
	`

	var lastReviewed any
	if !card.LastReviewedAt.IsZero() {
		lastReviewed = card.LastReviewedAt
	}

	_, err := s.db.ExecContext(
		ctx,
		query,
		card.UserID,
		card.Key.Verb,
		card.Key.Tense,
		card.Key.Person,
		card.EaseFactor,
		card.IntervalDays,
		card.Repetitions,
		lastReviewed,
		card.NextReviewAt,
		card.TotalReviews,
		card.CorrectReviews,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during card upsert",
				slog.String("user_id", card.UserID.String()))
			return store.ErrInvalidEntity
		}
		log.Error("failed to upsert review card",
			slog.String("error", err.Error()),
			slog.String("user_id", card.UserID.String()),
			slog.String("verb", card.Key.Verb))
		return MapError(err)
	}

	log.Debug("review card upserted",
		slog.String("user_id", card.UserID.String()),
		slog.String("verb", card.Key.Verb),
		slog.Int("interval_days", card.IntervalDays))
	return nil
}

// ListByUser implements store.ReviewCardStore.ListByUser.
func (s *PostgresReviewCardStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewCard, error) {
	query := `
		SELECT ` + reviewCardColumns + `
		FROM review_cards
		WHERE user_id = $1
		ORDER BY created_at
	`
	return s.list(ctx, query, userID)
}

// ListDue implements store.ReviewCardStore.ListDue.
func (s *PostgresReviewCardStore) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewCard, error) {
	query := `
		SELECT ` + reviewCardColumns + `
		FROM review_cards
		WHERE user_id = $1 AND next_review_at <= $2
		ORDER BY next_review_at
	`
	args := []any{userID, now}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	return s.list(ctx, query, args...)
}

func (s *PostgresReviewCardStore) list(ctx context.Context, query string, args ...any) ([]*domain.ReviewCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list review cards",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var cards []*domain.ReviewCard
	for rows.Next() {
		card, err := scanReviewCard(rows.Scan)
		if err != nil {
			log.Error("failed to scan review card row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// WithTx implements store.ReviewCardStore.WithTx.
func (s *PostgresReviewCardStore) WithTx(tx *sql.Tx) store.ReviewCardStore {
	return &PostgresReviewCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanReviewCard reads one review card row from a Scan-shaped function, so it
// works for both *sql.Row and *sql.Rows.
func scanReviewCard(scan func(dest ...any) error) (*domain.ReviewCard, error) {
	var card domain.ReviewCard
	var tense, person string
	var lastReviewed sql.NullTime

	err := scan(
		&card.UserID,
		&card.Key.Verb,
		&tense,
		&person,
		&card.EaseFactor,
		&card.IntervalDays,
		&card.Repetitions,
		&lastReviewed,
		&card.NextReviewAt,
		&card.TotalReviews,
		&card.CorrectReviews,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Key.Tense = domain.Tense(tense)
	card.Key.Person = domain.Person(person)
	if lastReviewed.Valid {
		card.LastReviewedAt = lastReviewed.Time
	}
	return &card, nil
}
