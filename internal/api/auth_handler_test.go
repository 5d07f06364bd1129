package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/subjuntivo-api/internal/config"
	"github.com/lmoreno/subjuntivo-api/internal/domain"
	"github.com/lmoreno/subjuntivo-api/internal/service"
	"github.com/lmoreno/subjuntivo-api/internal/service/auth"
)

func testAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	tokens, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)

	users := service.NewUserService(newFakeUserStore(), auth.NewBcryptPasswordService(4), tokens, nil)
	return NewAuthHandler(users, nil)
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	w := postJSON(t, h.Register, "/auth/register", RegisterRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEqual(t, uuid.Nil, resp.UserID)
	assert.Equal(t, domain.DifficultyBeginner, resp.Level)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegisterEndpointValidation(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	tests := []struct {
		name string
		req  RegisterRequest
		want int
	}{
		{
			name: "missing email",
			req:  RegisterRequest{Password: "correct-horse-battery"},
			want: http.StatusBadRequest,
		},
		{
			name: "malformed email",
			req:  RegisterRequest{Email: "not-an-email", Password: "correct-horse-battery"},
			want: http.StatusBadRequest,
		},
		{
			name: "short password",
			req:  RegisterRequest{Email: "ana@example.com", Password: "short"},
			want: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := postJSON(t, h.Register, "/auth/register", tc.req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	req := RegisterRequest{Email: "ana@example.com", Password: "correct-horse-battery"}
	w := postJSON(t, h.Register, "/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	w := postJSON(t, h.Register, "/auth/register", RegisterRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.Login, "/auth/login", LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)

	// Wrong password and unknown email both come back as 401.
	w = postJSON(t, h.Login, "/auth/login", LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-password-99",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, h.Login, "/auth/login", LoginRequest{
		Email:    "nadie@example.com",
		Password: "correct-horse-battery",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	w := postJSON(t, h.Register, "/auth/register", RegisterRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))

	w = postJSON(t, h.RefreshToken, "/auth/refresh", RefreshTokenRequest{
		RefreshToken: registered.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed RefreshTokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not a refresh token.
	w = postJSON(t, h.RefreshToken, "/auth/refresh", RefreshTokenRequest{
		RefreshToken: registered.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthEndpointsRejectMalformedJSON(t *testing.T) {
	t.Parallel()
	h := testAuthHandler(t)

	for _, handler := range []http.HandlerFunc{h.Register, h.Login, h.RefreshToken} {
		req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()
		handler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
