package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// PostgresAttemptStore implements the store.AttemptStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAttemptStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAttemptStore creates a new PostgreSQL implementation of the
// AttemptStore interface. If logger is nil, a default logger will be used.
func NewPostgresAttemptStore(db store.DBTX, logger *slog.Logger) *PostgresAttemptStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAttemptStore{
		db:     db,
		logger: logger.With(slog.String("component", "attempt_store")),
	}
}

// Ensure PostgresAttemptStore implements store.AttemptStore interface
var _ store.AttemptStore = (*PostgresAttemptStore)(nil)

// Create implements store.AttemptStore.Create.
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresAttemptStore) Create(ctx context.Context, attempt *domain.Attempt) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := attempt.Validate(); err != nil {
		log.Warn("attempt validation failed during create",
			slog.String("error", err.Error()),
			slog.String("attempt_id", attempt.ID.String()))
		return err
	}

	query := `
		INSERT INTO attempts (
			id, user_id, verb, tense, person, user_answer, is_correct,
			error_type, response_time_ms, difficulty_felt, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		attempt.ID,
		attempt.UserID,
		attempt.Verb,
		attempt.Tense,
		attempt.Person,
		attempt.UserAnswer,
		attempt.IsCorrect,
		string(attempt.ErrorType),
		attempt.ResponseTimeMs,
		attempt.DifficultyFelt,
		attempt.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during attempt creation",
				slog.String("user_id", attempt.UserID.String()))
			return store.ErrInvalidEntity
		}
		log.Error("failed to create attempt",
			slog.String("error", err.Error()),
			slog.String("attempt_id", attempt.ID.String()))
		return MapError(err)
	}

	return nil
}

// ListRecentByUser implements store.AttemptStore.ListRecentByUser.
func (s *PostgresAttemptStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Attempt, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, user_id, verb, tense, person, user_answer, is_correct,
			error_type, response_time_ms, difficulty_felt, created_at
		FROM attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list attempts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var attempts []*domain.Attempt
	for rows.Next() {
		var attempt domain.Attempt
		var tense, person, errorType string

		err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&attempt.Verb,
			&tense,
			&person,
			&attempt.UserAnswer,
			&attempt.IsCorrect,
			&errorType,
			&attempt.ResponseTimeMs,
			&attempt.DifficultyFelt,
			&attempt.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan attempt row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		attempt.Tense = domain.Tense(tense)
		attempt.Person = domain.Person(person)
		attempt.ErrorType = domain.ErrorType(errorType)
		attempts = append(attempts, &attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return attempts, nil
}

// WithTx implements store.AttemptStore.WithTx.
func (s *PostgresAttemptStore) WithTx(tx *sql.Tx) store.AttemptStore {
	return &PostgresAttemptStore{
		db:     tx,
		logger: s.logger,
	}
}
