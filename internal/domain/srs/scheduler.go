package srs

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
)

// Scheduler tracks one learner's review cards for the lifetime of a session.
// Cards are created lazily on the first attempt at a (verb, tense, person)
// atom and kept in a map under a composite key. The scheduler holds state in
// memory only; the caller loads any persisted cards in and persists updated
// cards back out. It is not safe for concurrent use by multiple goroutines;
// the persistence layer serializes updates per learner.
type Scheduler struct {
	userID uuid.UUID
	cards  map[domain.CardKey]*domain.ReviewCard
}

// NewScheduler creates an empty scheduler for a learner.
func NewScheduler(userID uuid.UUID) *Scheduler {
	return &Scheduler{
		userID: userID,
		cards:  make(map[domain.CardKey]*domain.ReviewCard),
	}
}

// Load seeds the scheduler with previously persisted cards. Cards belonging
// to other learners are ignored.
func (s *Scheduler) Load(cards []*domain.ReviewCard) {
	for _, card := range cards {
		if card == nil || card.UserID != s.userID {
			continue
		}
		s.cards[card.Key] = card
	}
}

// Card returns the card for a conjugation atom, if one exists yet.
func (s *Scheduler) Card(key domain.CardKey) (*domain.ReviewCard, bool) {
	card, ok := s.cards[key]
	return card, ok
}

// Cards returns every card the scheduler holds, in no particular order.
func (s *Scheduler) Cards() []*domain.ReviewCard {
	out := make([]*domain.ReviewCard, 0, len(s.cards))
	for _, card := range s.cards {
		out = append(out, card)
	}
	return out
}

// RecordAttempt applies one attempt outcome to the card for key, creating the
// card on first contact, and returns the updated card. The quality score is
// derived from the outcome with DeriveQuality.
func (s *Scheduler) RecordAttempt(
	key domain.CardKey,
	correct bool,
	responseTimeMs int,
	difficultyFelt int,
	now time.Time,
) (*domain.ReviewCard, error) {
	card, ok := s.cards[key]
	if !ok {
		created, err := domain.NewReviewCard(s.userID, key)
		if err != nil {
			return nil, err
		}
		card = created
	}

	quality := DeriveQuality(correct, responseTimeMs, difficultyFelt)
	updated, err := Review(card, quality, now)
	if err != nil {
		return nil, err
	}

	s.cards[key] = updated
	return updated, nil
}

// DueCards returns the cards due at now, most overdue first. A limit <= 0
// means no truncation.
func (s *Scheduler) DueCards(now time.Time, limit int) []*domain.ReviewCard {
	var due []*domain.ReviewCard
	for _, card := range s.cards {
		if !card.NextReviewAt.After(now) {
			due = append(due, card)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// NextItems returns up to count cards to practice: due cards first (oldest
// due leading), padded with never-reviewed cards in creation order until
// count is reached or the cards run out.
func (s *Scheduler) NextItems(count int, now time.Time) []*domain.ReviewCard {
	if count <= 0 {
		return nil
	}

	items := s.DueCards(now, count)
	if len(items) >= count {
		return items
	}

	picked := make(map[domain.CardKey]bool, len(items))
	for _, card := range items {
		picked[card.Key] = true
	}

	var fresh []*domain.ReviewCard
	for _, card := range s.cards {
		if card.TotalReviews == 0 && !picked[card.Key] {
			fresh = append(fresh, card)
		}
	}
	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.Before(fresh[j].CreatedAt)
	})

	for _, card := range fresh {
		if len(items) >= count {
			break
		}
		items = append(items, card)
	}
	return items
}
