package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/config"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/service/auth"
	"github.com/lmoreno/subjuntivo-api/internal/store"
)

func testUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	tokens, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)

	service := NewUserService(users, auth.NewBcryptPasswordService(4), tokens, nil)
	return service, users
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, users := testUserService(t)

	user, pair, err := service.Register(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyBeginner, user.Level)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The store holds a hash, never the plaintext.
	stored, err := users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, stored.Password)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "correct-horse-battery", stored.HashedPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, _ := testUserService(t)

	_, _, err := service.Register(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)

	_, _, err = service.Register(ctx, "ana@example.com", "another-password-1")
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()
	service, _ := testUserService(t)

	_, _, err := service.Register(context.Background(), "ana@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, _ := testUserService(t)

	registered, _, err := service.Register(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)

	user, pair, err := service.Login(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, _ := testUserService(t)

	_, _, err := service.Register(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, _, err = service.Login(ctx, "ana@example.com", "wrong-password-99")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "nadie@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, _ := testUserService(t)

	_, pair, err := service.Register(ctx, "ana@example.com", "correct-horse-battery")
	require.NoError(t, err)

	fresh, err := service.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = service.Refresh(ctx, pair.AccessToken)
	assert.Error(t, err)
}
