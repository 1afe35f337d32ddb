package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBackendSettings(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{
		"AUTH_JWT_SECRET": "secret",
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_URL")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"BACKEND_URL":     "postgres://u:p@localhost:5432/bags?sslmode=disable",
		"BACKEND_API_KEY": "anon",
		"AUTH_JWT_SECRET": "secret",
	}})
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "localhost:5432", cfg.Backend.URL.Host)
	assert.Equal(t, "anon", cfg.Backend.APIKey)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/logos", cfg.Storage.BasePath)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{
		"BACKEND_URL":     "postgres://localhost/bags",
		"BACKEND_API_KEY": "anon",
		"AUTH_JWT_SECRET": "secret",
		"STORE_DRIVER":    "sqlite",
	}})
	require.Error(t, err)
}
