package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tundeajayi/checkout-gateway/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GATEWAY_PRIMARY__ENV", "test")
	t.Setenv("GATEWAY_SERVER__PORT", "8080")
	t.Setenv("GATEWAY_SERVER__READ_TIMEOUT", "5s")
	t.Setenv("GATEWAY_SERVER__WRITE_TIMEOUT", "10s")
	t.Setenv("GATEWAY_SERVER__IDLE_TIMEOUT", "60s")
	t.Setenv("GATEWAY_SERVER__STATIC_DIR", "web")
	t.Setenv("GATEWAY_SQUARE__BASE_URL", "https://connect.squareupsandbox.com")
	t.Setenv("GATEWAY_SQUARE__ACCESS_TOKEN", "sandbox-token")
	t.Setenv("GATEWAY_SQUARE__VERSION", "2024-01-18")
	t.Setenv("GATEWAY_SQUARE__CONN_TIMEOUT", "10s")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GATEWAY_RETRY__MAX_ATTEMPTS", "4")
	t.Setenv("GATEWAY_RETRY__INITIAL_INTERVAL", "250ms")
	t.Setenv("GATEWAY_LOGGER__LEVEL", "debug")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "web", cfg.Server.StaticDir)
	assert.Equal(t, "https://connect.squareupsandbox.com", cfg.Square.BaseURL)
	assert.Equal(t, "2024-01-18", cfg.Square.Version)
	assert.Equal(t, 4, cfg.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.InitialInterval)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_MissingAccessToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GATEWAY_SQUARE__ACCESS_TOKEN", "")

	_, err := config.LoadConfig()

	require.Error(t, err)
}
