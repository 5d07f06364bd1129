package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
)

func testConjugationHandler(t *testing.T) *ConjugationHandler {
	t.Helper()
	tables := grammar.Default()
	return NewConjugationHandler(conjugation.NewEngine(tables), tables, nil, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestConjugateEndpoint(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	w := postJSON(t, h.Conjugate, "/conjugate", ConjugateRequest{
		Verb:   "hablar",
		Tense:  domain.TensePresent,
		Person: domain.PersonYo,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConjugateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "hable", resp.Conjugation)
	assert.False(t, resp.IsIrregular)
}

func TestConjugateEndpointRejectsBadInput(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	tests := []struct {
		name string
		req  ConjugateRequest
	}{
		{
			name: "verb without infinitive ending",
			req:  ConjugateRequest{Verb: "xyz", Tense: domain.TensePresent, Person: domain.PersonYo},
		},
		{
			name: "unknown tense",
			req:  ConjugateRequest{Verb: "hablar", Tense: "conditional", Person: domain.PersonYo},
		},
		{
			name: "missing person",
			req:  ConjugateRequest{Verb: "hablar", Tense: domain.TensePresent},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := postJSON(t, h.Conjugate, "/conjugate", tc.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestConjugateEndpointRejectsMalformedJSON(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/conjugate", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Conjugate(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAnswerEndpoint(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	w := postJSON(t, h.CheckAnswer, "/answers", AnswerRequest{
		Verb:          "pensar",
		Tense:         domain.TensePresent,
		Person:        domain.PersonYo,
		Answer:        "piense",
		TriggerPhrase: "espero que",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnswerResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Result.IsCorrect)
	require.NotNil(t, resp.Feedback)
	assert.True(t, resp.Feedback.IsCorrect)
	assert.NotEmpty(t, resp.Feedback.Message)
}

func TestCheckAnswerEndpointWrongAnswer(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	// Present indicative instead of subjunctive.
	w := postJSON(t, h.CheckAnswer, "/answers", AnswerRequest{
		Verb:   "hablar",
		Tense:  domain.TensePresent,
		Person: domain.PersonYo,
		Answer: "hablo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnswerResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Result.IsCorrect)
	assert.Equal(t, domain.ErrorTypeMoodConfusion, resp.Result.ErrorType)
	assert.NotEmpty(t, resp.Feedback.Suggestions)
}

func TestVerbInfoEndpoint(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	r := chi.NewRouter()
	r.Get("/verbs/{verb}", h.VerbInfo)

	req := httptest.NewRequest(http.MethodGet, "/verbs/pensar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var info domain.VerbInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.Equal(t, "pensar", info.Verb)
	assert.True(t, info.IsStemChanging)
	assert.Equal(t, domain.StemPatternEIe, info.StemChangePattern)

	req = httptest.NewRequest(http.MethodGet, "/verbs/xyz", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriggersEndpoint(t *testing.T) {
	t.Parallel()
	h := testConjugationHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/triggers", nil)
	w := httptest.NewRecorder()
	h.Triggers(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []TriggerCategoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
	require.Len(t, categories, 6)

	for _, cat := range categories {
		assert.NotEmpty(t, cat.Description, "category %s", cat.Category)
		assert.NotEmpty(t, cat.Triggers, "category %s", cat.Category)
	}
	assert.Equal(t, domain.CategoryWishes, categories[0].Category)
}
