package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vehicle-registry-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret, "fallback key applies when AUTH_JWT_SECRET is unset")
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "deployment-secret")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "2")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "deployment-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestTokenTTLFallback(t *testing.T) {
	assert.Equal(t, 24*time.Hour, AuthConfig{TokenTTLHours: 0}.TokenTTL())
	assert.Equal(t, 24*time.Hour, AuthConfig{TokenTTLHours: -1}.TokenTTL())
}
