package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/service"
)

// ReviewHandler records completed exercises against the learner's review
// schedule and lists due cards.
type ReviewHandler struct {
	engine   *conjugation.Engine
	practice *service.PracticeService
	logger   *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(engine *conjugation.Engine, practice *service.PracticeService, log *slog.Logger) *ReviewHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ReviewHandler{
		engine:   engine,
		practice: practice,
		logger:   log.With(slog.String("component", "review_handler")),
	}
}

// SubmitReview handles POST /reviews. The answer is re-checked server-side;
// the derived correctness and error type feed the SM-2 update.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ReviewRequest
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

	key := domain.CardKey{Verb: req.Verb, Tense: req.Tense, Person: req.Person}
	outcome, err := h.practice.ProcessExerciseResult(
		r.Context(),
		userID,
		key,
		req.Answer,
		result.IsCorrect,
		result.ErrorType,
		req.ResponseTimeMs,
		req.DifficultyFelt,
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record review")
		return
	}

	log.Debug("review recorded",
		slog.String("user_id", userID.String()),
		slog.String("verb", req.Verb),
		slog.Int("quality", outcome.Quality))
	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Result:        result,
		Quality:       outcome.Quality,
		EaseFactor:    outcome.Card.EaseFactor,
		Repetitions:   outcome.Card.Repetitions,
		IntervalDays:  outcome.IntervalDays,
		NextReviewAt:  outcome.NextReviewAt,
		NewDifficulty: outcome.NewDifficulty,
	})
}

// DueCards handles GET /reviews/due. The limit query parameter bounds the
// result; zero or absent means all due cards.
func (h *ReviewHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	cards, err := h.practice.DueCards(r.Context(), userID, time.Now().UTC(), limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list due cards")
		return
	}

	response := make([]DueCardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, DueCardResponse{
			Verb:         card.Key.Verb,
			Tense:        card.Key.Tense,
			Person:       card.Key.Person,
			IntervalDays: card.IntervalDays,
			NextReviewAt: card.NextReviewAt,
			TotalReviews: card.TotalReviews,
			Accuracy:     card.Accuracy(),
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
