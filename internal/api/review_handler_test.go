package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
	"github.com/lmoreno/subjuntivo-api/internal/service"
)

func TestDueCardsEndpoint(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	now := time.Now().UTC()

	cards := newFakeCardStore()
	overdue, err := domain.NewReviewCard(userID, domain.CardKey{
		Verb:   "hablar",
		Tense:  domain.TensePresent,
		Person: domain.PersonYo,
	})
	require.NoError(t, err)
	overdue.NextReviewAt = now.AddDate(0, 0, -2)
	overdue.TotalReviews = 4
	overdue.CorrectReviews = 3
	require.NoError(t, cards.Upsert(context.Background(), overdue))

	future, err := domain.NewReviewCard(userID, domain.CardKey{
		Verb:   "comer",
		Tense:  domain.TensePresent,
		Person: domain.PersonYo,
	})
	require.NoError(t, err)
	future.NextReviewAt = now.AddDate(0, 0, 7)
	require.NoError(t, cards.Upsert(context.Background(), future))

	practice := service.NewPracticeService(nil, cards, nil, nil, nil)
	h := NewReviewHandler(conjugation.NewEngine(grammar.Default()), practice, nil)

	req := httptest.NewRequest(http.MethodGet, "/reviews/due", nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	w := httptest.NewRecorder()
	h.DueCards(w, req.WithContext(ctx))
	require.Equal(t, http.StatusOK, w.Code)

	var due []DueCardResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&due))
	require.Len(t, due, 1)
	assert.Equal(t, "hablar", due[0].Verb)
	assert.Equal(t, 4, due[0].TotalReviews)
	assert.InDelta(t, 0.75, due[0].Accuracy, 0.001)
}

func TestDueCardsEndpointRequiresUser(t *testing.T) {
	t.Parallel()
	practice := service.NewPracticeService(nil, newFakeCardStore(), nil, nil, nil)
	h := NewReviewHandler(conjugation.NewEngine(grammar.Default()), practice, nil)

	req := httptest.NewRequest(http.MethodGet, "/reviews/due", nil)
	w := httptest.NewRecorder()
	h.DueCards(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDueCardsEndpointRejectsBadLimit(t *testing.T) {
	t.Parallel()
	practice := service.NewPracticeService(nil, newFakeCardStore(), nil, nil, nil)
	h := NewReviewHandler(conjugation.NewEngine(grammar.Default()), practice, nil)

	req := httptest.NewRequest(http.MethodGet, "/reviews/due?limit=-1", nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New())
	w := httptest.NewRecorder()
	h.DueCards(w, req.WithContext(ctx))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReviewValidation(t *testing.T) {
	t.Parallel()
	practice := service.NewPracticeService(nil, newFakeCardStore(), nil, nil, nil)
	h := NewReviewHandler(conjugation.NewEngine(grammar.Default()), practice, nil)

	withUser := func(r *http.Request) *http.Request {
		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, uuid.New())
		return r.WithContext(ctx)
	}

	// Missing answer fails request validation before any store access.
	payload, err := json.Marshal(ReviewRequest{
		Verb:   "hablar",
		Tense:  domain.TensePresent,
		Person: domain.PersonYo,
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	h.SubmitReview(w, withUser(req))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unauthenticated requests never reach validation.
	req = httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(payload))
	w = httptest.NewRecorder()
	h.SubmitReview(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
