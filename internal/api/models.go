package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/feedback"
)

// RegisterRequest is the payload for the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the successful response for register and login.
type AuthResponse struct {
	UserID       uuid.UUID         `json:"user_id"`
	Level        domain.Difficulty `json:"level"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

// RefreshTokenRequest is the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse is the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ConjugateRequest asks for one conjugated form.
type ConjugateRequest struct {
	Verb   string        `json:"verb"   validate:"required"`
	Tense  domain.Tense  `json:"tense"  validate:"required"`
	Person domain.Person `json:"person" validate:"required"`
}

// ConjugateResponse echoes the request cell alongside the engine's result.
type ConjugateResponse struct {
	Verb   string        `json:"verb"`
	Tense  domain.Tense  `json:"tense"`
	Person domain.Person `json:"person"`
	*domain.ConjugationResult
}

// AnswerRequest submits a learner's free-text answer for checking. The
// trigger fields are optional; when present the feedback names the trigger
// that forced the subjunctive.
type AnswerRequest struct {
	Verb            string                 `json:"verb"   validate:"required"`
	Tense           domain.Tense           `json:"tense"  validate:"required"`
	Person          domain.Person          `json:"person" validate:"required"`
	Answer          string                 `json:"answer" validate:"required"`
	TriggerPhrase   string                 `json:"trigger_phrase,omitempty"`
	TriggerCategory domain.TriggerCategory `json:"trigger_category,omitempty"`
}

// AnswerResponse pairs the validation verdict with generated feedback.
type AnswerResponse struct {
	Result   *domain.ValidationResult `json:"result"`
	Feedback *feedback.Feedback       `json:"feedback"`
}

// TriggerCategoryResponse describes one WEIRDO category.
type TriggerCategoryResponse struct {
	Category    domain.TriggerCategory `json:"category"`
	Description string                 `json:"description"`
	Triggers    []string               `json:"triggers"`
	Examples    []string               `json:"examples"`
}

// ReviewRequest reports a completed exercise. The server re-checks the
// answer itself, so the client never declares correctness.
type ReviewRequest struct {
	Verb           string        `json:"verb"   validate:"required"`
	Tense          domain.Tense  `json:"tense"  validate:"required"`
	Person         domain.Person `json:"person" validate:"required"`
	Answer         string        `json:"answer" validate:"required"`
	ResponseTimeMs int           `json:"response_time_ms" validate:"gte=0"`
	DifficultyFelt int           `json:"difficulty_felt"  validate:"gte=0,lte=5"`
}

// ReviewResponse is the scheduling outcome of one processed answer.
type ReviewResponse struct {
	Result        *domain.ValidationResult `json:"result"`
	Quality       int                      `json:"quality"`
	EaseFactor    float64                  `json:"ease_factor"`
	Repetitions   int                      `json:"repetitions"`
	IntervalDays  int                      `json:"interval_days"`
	NextReviewAt  time.Time                `json:"next_review_at"`
	NewDifficulty domain.Difficulty        `json:"new_difficulty"`
}

// DueCardResponse is one due review card.
type DueCardResponse struct {
	Verb         string        `json:"verb"`
	Tense        domain.Tense  `json:"tense"`
	Person       domain.Person `json:"person"`
	IntervalDays int           `json:"interval_days"`
	NextReviewAt time.Time     `json:"next_review_at"`
	TotalReviews int           `json:"total_reviews"`
	Accuracy     float64       `json:"accuracy"`
}
