package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for service tests.
type fakeUserStore struct {
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return store.ErrEmailExists
	}
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) UpdateLevel(_ context.Context, id uuid.UUID, level domain.Difficulty) error {
	user, ok := f.byID[id]
	if !ok {
		return store.ErrUserNotFound
	}
	user.Level = level
	return nil
}

func (f *fakeUserStore) WithTx(*sql.Tx) store.UserStore { return f }

// fakeCardStore is an in-memory store.ReviewCardStore for service tests.
type fakeCardStore struct {
	cards map[domain.CardKey]*domain.ReviewCard
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[domain.CardKey]*domain.ReviewCard)}
}

func (f *fakeCardStore) Get(_ context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error) {
	card, ok := f.cards[key]
	if !ok || card.UserID != userID {
		return nil, store.ErrCardNotFound
	}
	return card, nil
}

func (f *fakeCardStore) GetForUpdate(ctx context.Context, userID uuid.UUID, key domain.CardKey) (*domain.ReviewCard, error) {
	return f.Get(ctx, userID, key)
}

func (f *fakeCardStore) Upsert(_ context.Context, card *domain.ReviewCard) error {
	f.cards[card.Key] = card
	return nil
}

func (f *fakeCardStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.ReviewCard, error) {
	var out []*domain.ReviewCard
	for _, card := range f.cards {
		if card.UserID == userID {
			out = append(out, card)
		}
	}
	return out, nil
}

func (f *fakeCardStore) ListDue(_ context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewCard, error) {
	var out []*domain.ReviewCard
	for _, card := range f.cards {
		if card.UserID == userID && !card.NextReviewAt.After(now) {
			out = append(out, card)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCardStore) WithTx(*sql.Tx) store.ReviewCardStore { return f }

// fakeAttemptStore is an in-memory store.AttemptStore for service tests.
type fakeAttemptStore struct {
	attempts []*domain.Attempt
}

func (f *fakeAttemptStore) Create(_ context.Context, attempt *domain.Attempt) error {
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeAttemptStore) ListRecentByUser(_ context.Context, userID uuid.UUID, limit int) ([]*domain.Attempt, error) {
	var out []*domain.Attempt
	for i := len(f.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if f.attempts[i].UserID == userID {
			out = append(out, f.attempts[i])
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) WithTx(*sql.Tx) store.AttemptStore { return f }
