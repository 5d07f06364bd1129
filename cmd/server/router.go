package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lmoreno/subjuntivo-api/internal/api"
	apimiddleware "github.com/lmoreno/subjuntivo-api/internal/api/middleware"
)

// setupRouter builds the application router: chi's standard middleware plus
// trace IDs, public reference endpoints, and the authenticated practice
// endpoints.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.logger)
	conjugationHandler := api.NewConjugationHandler(app.engine, app.tables, app.userStore, app.logger)
	exerciseHandler := api.NewExerciseHandler(app.engine, app.tables, app.userStore, app.logger)
	reviewHandler := api.NewReviewHandler(app.engine, app.practiceService, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints: auth plus the reference surface, which reads no
		// learner state.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Post("/conjugate", conjugationHandler.Conjugate)
		r.Get("/verbs/{verb}", conjugationHandler.VerbInfo)
		r.Get("/triggers", conjugationHandler.Triggers)

		// Practice endpoints require a learner.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/answers", conjugationHandler.CheckAnswer)
			r.Get("/exercises", exerciseHandler.Generate)
			r.Get("/exercises/set", exerciseHandler.GenerateSet)
			r.Post("/reviews", reviewHandler.SubmitReview)
			r.Get("/reviews/due", reviewHandler.DueCards)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
