package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/srs"
)

func TestReevaluateTierPromotesAfterFullWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserStore()
	user, err := domain.NewUser("ana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	require.NoError(t, users.Create(ctx, user))

	attempts := &fakeAttemptStore{}
	key := domain.CardKey{Verb: "hablar", Tense: domain.TensePresent, Person: domain.PersonYo}
	for i := 0; i < srs.DefaultWindowSize; i++ {
		attempt, err := domain.NewAttempt(user.ID, key, "hable", true, "", 2000, 0)
		require.NoError(t, err)
		require.NoError(t, attempts.Create(ctx, attempt))
	}

	service := NewPracticeService(nil, newFakeCardStore(), attempts, users, nil)
	tier, err := service.reevaluateTier(ctx, users, attempts, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyIntermediate, tier)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyIntermediate, stored.Level)
}

func TestReevaluateTierHoldsBelowFullWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserStore()
	user, err := domain.NewUser("ana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	require.NoError(t, users.Create(ctx, user))

	attempts := &fakeAttemptStore{}
	key := domain.CardKey{Verb: "hablar", Tense: domain.TensePresent, Person: domain.PersonYo}
	for i := 0; i < srs.DefaultWindowSize-1; i++ {
		attempt, err := domain.NewAttempt(user.ID, key, "hable", true, "", 2000, 0)
		require.NoError(t, err)
		require.NoError(t, attempts.Create(ctx, attempt))
	}

	service := NewPracticeService(nil, newFakeCardStore(), attempts, users, nil)
	tier, err := service.reevaluateTier(ctx, users, attempts, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyBeginner, tier)
}

func TestNextItemsPrefersDueCards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	cards := newFakeCardStore()
	due, err := domain.NewReviewCard(userID, domain.CardKey{Verb: "hablar", Tense: domain.TensePresent, Person: domain.PersonYo})
	require.NoError(t, err)
	due.NextReviewAt = now.AddDate(0, 0, -1)
	due.TotalReviews = 2
	require.NoError(t, cards.Upsert(ctx, due))

	fresh, err := domain.NewReviewCard(userID, domain.CardKey{Verb: "comer", Tense: domain.TensePresent, Person: domain.PersonYo})
	require.NoError(t, err)
	fresh.NextReviewAt = now.AddDate(0, 0, 5)
	require.NoError(t, cards.Upsert(ctx, fresh))

	service := NewPracticeService(nil, cards, &fakeAttemptStore{}, newFakeUserStore(), nil)
	items, err := service.NextItems(ctx, userID, 2, now)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "hablar", items[0].Key.Verb)
	assert.Equal(t, "comer", items[1].Key.Verb)

	none, err := service.NextItems(ctx, userID, 0, now)
	require.NoError(t, err)
	assert.Empty(t, none)
}
