package main

import (
	"database/sql"
	"log/slog"

	"github.com/lmoreno/subjuntivo-api/internal/config"
	"github.com/lmoreno/subjuntivo-api/internal/domain/conjugation"
	"github.com/lmoreno/subjuntivo-api/internal/domain/grammar"
	"github.com/lmoreno/subjuntivo-api/internal/platform/postgres"
	"github.com/lmoreno/subjuntivo-api/internal/service"
	"github.com/lmoreno/subjuntivo-api/internal/service/auth"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tables *grammar.Tables
	engine *conjugation.Engine

	userStore    store.UserStore
	cardStore    store.ReviewCardStore
	attemptStore store.AttemptStore

	jwtService      auth.JWTService
	passwordService auth.PasswordService
	userService     *service.UserService
	practiceService *service.PracticeService
}

// newApplication wires stores and services on top of an open database
// connection. JWT setup validates the configured secret, so an invalid
// config fails loudly here rather than on the first login.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	tables := grammar.Default()
	engine := conjugation.NewEngine(tables)

	userStore := postgres.NewPostgresUserStore(db, logger)
	cardStore := postgres.NewPostgresReviewCardStore(db, logger)
	attemptStore := postgres.NewPostgresAttemptStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		// ALLOW-PANIC: startup wiring with already-validated config
		panic("failed to create JWT service: " + err.Error())
	}
	passwordService := auth.NewBcryptPasswordService(cfg.Auth.BcryptCost)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		tables:          tables,
		engine:          engine,
		userStore:       userStore,
		cardStore:       cardStore,
		attemptStore:    attemptStore,
		jwtService:      jwtService,
		passwordService: passwordService,
		userService:     service.NewUserService(userStore, passwordService, jwtService, logger),
		practiceService: service.NewPracticeService(db, cardStore, attemptStore, userStore, logger),
	}
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
