package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

func key(verb string, person domain.Person) domain.CardKey {
	return domain.CardKey{Verb: verb, Tense: domain.TensePresent, Person: person}
}

func TestRecordAttemptCreatesCardLazily(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	scheduler := NewScheduler(uuid.New())

	atom := key("hablar", domain.PersonYo)
	_, ok := scheduler.Card(atom)
	assert.False(t, ok)

	card, err := scheduler.RecordAttempt(atom, true, 2000, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 1, card.Repetitions)
	assert.Equal(t, 1, card.IntervalDays)
	assert.Equal(t, 1, card.TotalReviews)

	stored, ok := scheduler.Card(atom)
	require.True(t, ok)
	assert.Equal(t, card, stored)
}

func TestRecordAttemptUpdatesExistingCard(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	scheduler := NewScheduler(uuid.New())
	atom := key("hablar", domain.PersonYo)

	_, err := scheduler.RecordAttempt(atom, true, 2000, 0, now)
	require.NoError(t, err)

	second, err := scheduler.RecordAttempt(atom, true, 2000, 0, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Repetitions)
	assert.Equal(t, 6, second.IntervalDays)
}

func TestLoadIgnoresOtherLearnersCards(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	scheduler := NewScheduler(userID)

	mine, err := domain.NewReviewCard(userID, key("hablar", domain.PersonYo))
	require.NoError(t, err)
	other, err := domain.NewReviewCard(uuid.New(), key("comer", domain.PersonYo))
	require.NoError(t, err)

	scheduler.Load([]*domain.ReviewCard{mine, other, nil})
	assert.Len(t, scheduler.Cards(), 1)
}

func TestDueCardsOrderedMostOverdueFirst(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	scheduler := NewScheduler(userID)

	makeCard := func(verb string, due time.Time) *domain.ReviewCard {
		card, err := domain.NewReviewCard(userID, key(verb, domain.PersonYo))
		require.NoError(t, err)
		card.NextReviewAt = due
		return card
	}

	scheduler.Load([]*domain.ReviewCard{
		makeCard("hablar", now.AddDate(0, 0, -1)),
		makeCard("comer", now.AddDate(0, 0, -7)),
		makeCard("vivir", now.AddDate(0, 0, 3)), // not yet due
		makeCard("pensar", now),                 // due exactly now counts
	})

	due := scheduler.DueCards(now, 0)
	require.Len(t, due, 3)
	assert.Equal(t, "comer", due[0].Key.Verb)
	assert.Equal(t, "hablar", due[1].Key.Verb)
	assert.Equal(t, "pensar", due[2].Key.Verb)

	limited := scheduler.DueCards(now, 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "comer", limited[0].Key.Verb)
}

func TestNextItemsPadsWithNeverReviewedCards(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	scheduler := NewScheduler(userID)

	reviewed, err := domain.NewReviewCard(userID, key("hablar", domain.PersonYo))
	require.NoError(t, err)
	reviewed.NextReviewAt = now.AddDate(0, 0, -2)
	reviewed.TotalReviews = 3

	oldFresh, err := domain.NewReviewCard(userID, key("comer", domain.PersonYo))
	require.NoError(t, err)
	oldFresh.CreatedAt = now.AddDate(0, 0, -10)
	oldFresh.NextReviewAt = now.AddDate(0, 0, 5)

	newFresh, err := domain.NewReviewCard(userID, key("vivir", domain.PersonYo))
	require.NoError(t, err)
	newFresh.CreatedAt = now.AddDate(0, 0, -1)
	newFresh.NextReviewAt = now.AddDate(0, 0, 5)

	scheduler.Load([]*domain.ReviewCard{newFresh, reviewed, oldFresh})

	items := scheduler.NextItems(3, now)
	require.Len(t, items, 3)
	assert.Equal(t, "hablar", items[0].Key.Verb) // due first
	assert.Equal(t, "comer", items[1].Key.Verb)  // oldest never-reviewed
	assert.Equal(t, "vivir", items[2].Key.Verb)

	// Count smaller than the due set just truncates.
	one := scheduler.NextItems(1, now)
	require.Len(t, one, 1)
	assert.Equal(t, "hablar", one[0].Key.Verb)
}
