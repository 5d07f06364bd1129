package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
	"github.com/lmoreno/subjuntivo-api/internal/feedback"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// ConjugationHandler serves conjugation lookups, answer checking with
// feedback, verb information, and the WEIRDO trigger catalog.
type ConjugationHandler struct {
	engine *conjugation.Engine
	tables *grammar.Tables
	users  store.UserStore
	logger *slog.Logger
}

// NewConjugationHandler creates a ConjugationHandler. The user store may be
// nil when answer checking never sees authenticated requests; feedback then
// uses beginner-level encouragement.
func NewConjugationHandler(
	engine *conjugation.Engine,
	tables *grammar.Tables,
	users store.UserStore,
	log *slog.Logger,
) *ConjugationHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ConjugationHandler{
		engine: engine,
		tables: tables,
		users:  users,
		logger: log.With(slog.String("component", "conjugation_handler")),
	}
}

// Conjugate handles POST /conjugate.
func (h *ConjugationHandler) Conjugate(w http.ResponseWriter, r *http.Request) {
	var req ConjugateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.engine.Conjugate(req.Verb, req.Tense, req.Person)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ConjugateResponse{
		Verb:              req.Verb,
		Tense:             req.Tense,
		Person:            req.Person,
		ConjugationResult: result,
	})
}

// CheckAnswer handles POST /answers. It validates the learner's form against
// the engine and builds feedback tuned to the learner's difficulty tier.
func (h *ConjugationHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result := h.engine.ValidateAnswer(req.Verb, req.Tense, req.Person, req.Answer)
	if result.ErrorType == domain.ErrorTypeValidationInternal {
		HandleAPIError(w, r, domain.ErrInvalidVerb, "")
		return
	}

	var ctx *feedback.ExerciseContext
	if req.TriggerPhrase != "" || req.TriggerCategory != "" {
		ctx = &feedback.ExerciseContext{
			TriggerPhrase:   req.TriggerPhrase,
			TriggerCategory: req.TriggerCategory,
		}
	}

	level := h.learnerLevel(r)
	fb := feedback.NewGenerator(feedback.NewErrorAnalyzer(), h.engine).Generate(result, ctx, level)

	log.Debug("answer checked",
		slog.String("verb", req.Verb),
		slog.Bool("correct", result.IsCorrect),
		slog.String("error_type", string(result.ErrorType)))
	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{
		Result:   result,
		Feedback: fb,
	})
}

// VerbInfo handles GET /verbs/{verb}.
func (h *ConjugationHandler) VerbInfo(w http.ResponseWriter, r *http.Request) {
	verb := chi.URLParam(r, "verb")
	info, err := h.engine.VerbInfo(verb)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, info)
}

// Triggers handles GET /triggers.
func (h *ConjugationHandler) Triggers(w http.ResponseWriter, r *http.Request) {
	categories := make([]TriggerCategoryResponse, 0, len(domain.TriggerCategories()))
	for _, cat := range domain.TriggerCategories() {
		entry, ok := h.tables.Category(cat)
		if !ok {
			continue
		}
		categories = append(categories, TriggerCategoryResponse{
			Category:    cat,
			Description: entry.Description,
			Triggers:    entry.Triggers,
			Examples:    entry.Examples,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// learnerLevel looks up the authenticated learner's tier, defaulting to
// beginner for anonymous requests or lookup failures.
func (h *ConjugationHandler) learnerLevel(r *http.Request) domain.Difficulty {
	if h.users == nil {
		return domain.DifficultyBeginner
	}
	userID, ok := getUserIDFromContext(r)
	if !ok {
		return domain.DifficultyBeginner
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		return domain.DifficultyBeginner
	}
	return user.Level
}
