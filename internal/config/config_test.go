package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"PLACES_PRIMARY__ENV":                 "development",
		"PLACES_SERVER__PORT":                 "8080",
		"PLACES_SERVER__READ_TIMEOUT":         "30",
		"PLACES_SERVER__WRITE_TIMEOUT":        "30",
		"PLACES_SERVER__IDLE_TIMEOUT":         "60",
		"PLACES_SERVER__CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"PLACES_DATABASE__HOST":               "localhost",
		"PLACES_DATABASE__PORT":               "5432",
		"PLACES_DATABASE__USER":               "places",
		"PLACES_DATABASE__PASSWORD":           "secret",
		"PLACES_DATABASE__NAME":               "places",
		"PLACES_DATABASE__SSL_MODE":           "disable",
		"PLACES_DATABASE__MAX_OPEN_CONNS":     "25",
		"PLACES_DATABASE__MAX_IDLE_CONNS":     "5",
		"PLACES_DATABASE__CONN_MAX_LIFETIME":  "300",
		"PLACES_DATABASE__CONN_MAX_IDLE_TIME": "60",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("PLACES_SERVER__PORT"))
	assert.Equal(t, "database.max_open_conns", envKey("PLACES_DATABASE__MAX_OPEN_CONNS"))
	assert.Equal(t, "observability.logging.level", envKey("PLACES_OBSERVABILITY__LOGGING__LEVEL"))
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)

	// defaults
	assert.Equal(t, float64(DefaultRateLimit), cfg.Server.RateLimit)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACES_DATABASE__HOST", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRateLimitOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACES_SERVER__RATE_LIMIT", "5.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5.5, cfg.Server.RateLimit)
}

func TestLoadConfigObservabilityOverlaysDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACES_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.True(t, cfg.Observability.RunsHealthCheck("database"))
}

func TestLoadConfigNegativeRateLimitIsKept(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACES_SERVER__RATE_LIMIT", "-1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, -1.0, cfg.Server.RateLimit)
}
