// Package service wires the domain core to persistence: account management
// and the practice flow that feeds answers through the SM-2 scheduler.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/platform/logger"
	"github.com/lmoreno/subjuntivo-api/internal/service/auth"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

// TokenPair is the access/refresh token pair issued on register and login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserService handles learner account registration and authentication.
type UserService struct {
	users     store.UserStore
	passwords auth.PasswordService
	tokens    auth.JWTService
	logger    *slog.Logger
}

// NewUserService creates a user service. A nil logger uses the default.
func NewUserService(users store.UserStore, passwords auth.PasswordService, tokens auth.JWTService, log *slog.Logger) *UserService {
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    log.With(slog.String("component", "user_service")),
	}
}

// Register creates a learner account and issues a token pair.
// Returns store.ErrEmailExists when the email is taken and domain validation
// errors for malformed input.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password)
	if err != nil {
		return nil, nil, err
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, pair, nil
}

// Login verifies credentials and issues a token pair. A missing user and a
// wrong password both return auth.ErrInvalidCredentials so the response does
// not reveal which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", user.ID.String()))
		return nil, nil, auth.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, auth.ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
