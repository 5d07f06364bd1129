package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUBJ_DATABASE_URL", "postgres://localhost:5432/subjuntivo_test")
	t.Setenv("SUBJ_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUBJ_SERVER_PORT", "9090")
	t.Setenv("SUBJ_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/subjuntivo_test", cfg.Database.URL)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("SUBJ_DATABASE_URL", "postgres://localhost:5432/subjuntivo_test")
	t.Setenv("SUBJ_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("SUBJ_DATABASE_URL", "postgres://localhost:5432/subjuntivo_test")
	t.Setenv("SUBJ_AUTH_JWT_SECRET", "tooshort")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUBJ_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}
