package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

func testExerciseHandler(t *testing.T, users *fakeUserStore) *ExerciseHandler {
	t.Helper()
	tables := grammar.Default()
	if users == nil {
		return NewExerciseHandler(conjugation.NewEngine(tables), tables, nil, nil)
	}
	return NewExerciseHandler(conjugation.NewEngine(tables), tables, users, nil)
}

func TestGenerateExerciseEndpoint(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises?verb=pensar&difficulty=advanced", nil)
	w := httptest.NewRecorder()
	h.Generate(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var exercise domain.Exercise
	require.NoError(t, json.NewDecoder(w.Body).Decode(&exercise))
	assert.Equal(t, "pensar", exercise.Verb)
	assert.Equal(t, domain.DifficultyAdvanced, exercise.Difficulty)
	assert.NotEmpty(t, exercise.TriggerPhrase)
	assert.NotEmpty(t, exercise.CorrectAnswer)
}

func TestGenerateExerciseRejectsBadDifficulty(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises?difficulty=expert", nil)
	w := httptest.NewRecorder()
	h.Generate(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateExerciseUsesLearnerTier(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	user, err := domain.NewUser("ana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	user.Level = domain.DifficultyIntermediate
	require.NoError(t, users.Create(context.Background(), user))

	h := testExerciseHandler(t, users)

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, user.ID)
	w := httptest.NewRecorder()
	h.Generate(w, req.WithContext(ctx))
	require.Equal(t, http.StatusOK, w.Code)

	var exercise domain.Exercise
	require.NoError(t, json.NewDecoder(w.Body).Decode(&exercise))
	assert.Equal(t, domain.DifficultyIntermediate, exercise.Difficulty)
}

func TestGenerateSetEndpoint(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises/set?count=6&difficulty=beginner", nil)
	w := httptest.NewRecorder()
	h.GenerateSet(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var exercises []*domain.Exercise
	require.NoError(t, json.NewDecoder(w.Body).Decode(&exercises))
	require.Len(t, exercises, 6)

	// Every third item in a set is multiple choice.
	assert.Equal(t, domain.ExerciseTypeMultipleChoice, exercises[2].Type)
	assert.Equal(t, domain.ExerciseTypeMultipleChoice, exercises[5].Type)
}

func TestGenerateSetRestrictsCategories(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/exercises/set?count=6&difficulty=beginner&categories=Wishes,Recommendations", nil)
	w := httptest.NewRecorder()
	h.GenerateSet(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var exercises []*domain.Exercise
	require.NoError(t, json.NewDecoder(w.Body).Decode(&exercises))
	require.Len(t, exercises, 6)
	for i, exercise := range exercises {
		assert.Contains(t,
			[]domain.TriggerCategory{domain.CategoryWishes, domain.CategoryRecommendations},
			exercise.TriggerCategory, "exercise %d", i)
	}
}

func TestGenerateSetRejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises/set?categories=Wishes,Hypotheticals", nil)
	w := httptest.NewRecorder()
	h.GenerateSet(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSetRejectsBadCount(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	for _, raw := range []string{"0", "-3", "ten"} {
		req := httptest.NewRequest(http.MethodGet, "/exercises/set?count="+raw, nil)
		w := httptest.NewRecorder()
		h.GenerateSet(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "count=%s", raw)
	}
}

func TestGenerateSetCapsCount(t *testing.T) {
	t.Parallel()
	h := testExerciseHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises/set?count=500&difficulty=beginner", nil)
	w := httptest.NewRecorder()
	h.GenerateSet(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var exercises []*domain.Exercise
	require.NoError(t, json.NewDecoder(w.Body).Decode(&exercises))
	assert.Len(t, exercises, maxSetSize)
}
