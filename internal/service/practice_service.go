package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/srs"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// PracticeResult is the scheduling outcome of one processed answer.
type PracticeResult struct {
	Card          *domain.ReviewCard `json:"card"`
	Quality       int                `json:"quality"`
	IntervalDays  int                `json:"interval_days"`
	NextReviewAt  time.Time          `json:"next_review_at"`
	NewDifficulty domain.Difficulty  `json:"new_difficulty"`
}

// PracticeService applies answer outcomes to a learner's persistent review
// state: the SM-2 card, the append-only attempt log, and the adaptive
// difficulty tier. All three are updated in one transaction behind a row
// lock, which serializes concurrent reviews of the same card.
type PracticeService struct {
	db       *sql.DB
	cards    store.ReviewCardStore
	attempts store.AttemptStore
	users    store.UserStore
	logger   *slog.Logger
}

// NewPracticeService creates a practice service. A nil logger uses the default.
func NewPracticeService(
	db *sql.DB,
	cards store.ReviewCardStore,
	attempts store.AttemptStore,
	users store.UserStore,
	log *slog.Logger,
) *PracticeService {
	if log == nil {
		log = slog.Default()
	}
	return &PracticeService{
		db:       db,
		cards:    cards,
		attempts: attempts,
		users:    users,
		logger:   log.With(slog.String("component", "practice_service")),
	}
}

// ProcessExerciseResult records one answer: it derives an SM-2 quality score,
// updates (or lazily creates) the review card, appends an attempt record, and
// re-evaluates the learner's difficulty tier over the recent attempt window.
func (s *PracticeService) ProcessExerciseResult(
	ctx context.Context,
	userID uuid.UUID,
	key domain.CardKey,
	userAnswer string,
	correct bool,
	errorType domain.ErrorType,
	responseTimeMs int,
	difficultyFelt int,
) (*PracticeResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := time.Now().UTC()

	var result *PracticeResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		cards := s.cards.WithTx(tx)
		attempts := s.attempts.WithTx(tx)
		users := s.users.WithTx(tx)

		card, err := cards.GetForUpdate(ctx, userID, key)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			card, err = domain.NewReviewCard(userID, key)
			if err != nil {
				return err
			}
		}

		quality := srs.DeriveQuality(correct, responseTimeMs, difficultyFelt)
		updated, err := srs.Review(card, quality, now)
		if err != nil {
			return err
		}

		if err := cards.Upsert(ctx, updated); err != nil {
			return err
		}

		attempt, err := domain.NewAttempt(userID, key, userAnswer, correct, errorType, responseTimeMs, difficultyFelt)
		if err != nil {
			return err
		}
		if err := attempts.Create(ctx, attempt); err != nil {
			return err
		}

		tier, err := s.reevaluateTier(ctx, users, attempts, userID)
		if err != nil {
			return err
		}

		result = &PracticeResult{
			Card:          updated,
			Quality:       quality,
			IntervalDays:  updated.IntervalDays,
			NextReviewAt:  updated.NextReviewAt,
			NewDifficulty: tier,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("exercise result processed",
		slog.String("user_id", userID.String()),
		slog.String("verb", key.Verb),
		slog.Int("quality", result.Quality),
		slog.Int("interval_days", result.IntervalDays),
		slog.String("difficulty", string(result.NewDifficulty)))
	return result, nil
}

// reevaluateTier rebuilds the adaptive difficulty window from the learner's
// most recent attempts (the one just written included) and persists a tier
// change when one happens.
func (s *PracticeService) reevaluateTier(
	ctx context.Context,
	users store.UserStore,
	attempts store.AttemptStore,
	userID uuid.UUID,
) (domain.Difficulty, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	recent, err := attempts.ListRecentByUser(ctx, userID, srs.DefaultWindowSize)
	if err != nil {
		return "", err
	}

	manager := srs.NewAdaptiveDifficultyManager(user.Level, srs.DefaultWindowSize)
	// ListRecentByUser returns newest first; replay oldest first.
	for i := len(recent) - 1; i >= 0; i-- {
		manager.Record(recent[i].IsCorrect, recent[i].ResponseTimeMs)
	}

	tier := manager.Tier()
	if tier != user.Level {
		if err := users.UpdateLevel(ctx, userID, tier); err != nil {
			return "", err
		}
	}
	return tier, nil
}

// DueCards lists the learner's cards due at now, most overdue first.
func (s *PracticeService) DueCards(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewCard, error) {
	return s.cards.ListDue(ctx, userID, now, limit)
}

// NextItems returns up to count cards to practice: due cards first, padded
// with never-reviewed cards in creation order.
func (s *PracticeService) NextItems(ctx context.Context, userID uuid.UUID, count int, now time.Time) ([]*domain.ReviewCard, error) {
	if count <= 0 {
		return nil, nil
	}

	all, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	scheduler := srs.NewScheduler(userID)
	scheduler.Load(all)
	return scheduler.NextItems(count, now), nil
}
