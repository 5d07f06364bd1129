package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lmoreno/subjuntivo-api/internal/api/shared"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
	"github.com/lmoreno/subjuntivo-api/internal/generation"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// Set sizes for GET /exercises/set.
const (
	defaultSetSize = 10
	maxSetSize     = 50
)

// ExerciseHandler serves generated practice exercises. Generators are built
// per request because the underlying rand source is not concurrency-safe.
type ExerciseHandler struct {
	engine *conjugation.Engine
	tables *grammar.Tables
	users  store.UserStore
	logger *slog.Logger
}

// NewExerciseHandler creates an ExerciseHandler.
func NewExerciseHandler(
	engine *conjugation.Engine,
	tables *grammar.Tables,
	users store.UserStore,
	log *slog.Logger,
) *ExerciseHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ExerciseHandler{
		engine: engine,
		tables: tables,
		users:  users,
		logger: log.With(slog.String("component", "exercise_handler")),
	}
}

// Generate handles GET /exercises. Query parameters narrow the exercise:
// difficulty, type, category, verb, and tense; anything omitted is the
// generator's choice, with difficulty defaulting to the learner's tier.
func (h *ExerciseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params := generation.Params{
		Difficulty: domain.Difficulty(r.URL.Query().Get("difficulty")),
		Type:       domain.ExerciseType(r.URL.Query().Get("type")),
		Category:   domain.TriggerCategory(r.URL.Query().Get("category")),
		Verb:       r.URL.Query().Get("verb"),
		Tense:      domain.Tense(r.URL.Query().Get("tense")),
	}
	if params.Difficulty == "" {
		params.Difficulty = h.learnerLevel(r)
	}

	gen := generation.NewGenerator(h.engine, h.tables, nil, h.logger)
	exercise, err := gen.Generate(params)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("exercise generated",
		slog.String("verb", exercise.Verb),
		slog.String("type", string(exercise.Type)),
		slog.String("difficulty", string(exercise.Difficulty)))
	shared.RespondWithJSON(w, r, http.StatusOK, exercise)
}

// GenerateSet handles GET /exercises/set. The count query parameter defaults
// to 10 and is capped at 50; a comma-separated categories parameter restricts
// the set to those WEIRDO categories.
func (h *ExerciseHandler) GenerateSet(w http.ResponseWriter, r *http.Request) {
	count := defaultSetSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = parsed
	}
	if count > maxSetSize {
		count = maxSetSize
	}

	difficulty := domain.Difficulty(r.URL.Query().Get("difficulty"))
	if difficulty == "" {
		difficulty = h.learnerLevel(r)
	}

	var categories []domain.TriggerCategory
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			categories = append(categories, domain.TriggerCategory(strings.TrimSpace(part)))
		}
	}

	gen := generation.NewGenerator(h.engine, h.tables, nil, h.logger)
	exercises, err := gen.GenerateSet(count, difficulty, categories)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercises)
}

func (h *ExerciseHandler) learnerLevel(r *http.Request) domain.Difficulty {
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
