// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional
// `.env` file), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any of the code below reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix PLACES_.

	- The prefix is removed and the rest is lowercased.
	- A double underscore marks one level of nesting, a single underscore
	  is kept as part of the key:

	  PLACES_SERVER__PORT                      -> server.port
	  PLACES_DATABASE__MAX_OPEN_CONNS          -> database.max_open_conns
	  PLACES_OBSERVABILITY__LOGGING__LEVEL     -> observability.logging.level
*/

// EnvPrefix is the prefix every configuration env var must carry.
const EnvPrefix = "PLACES_"

const (
	// ServiceName tags logs and New Relic transactions.
	ServiceName = "places-api"

	// DefaultRateLimit is the per-client requests-per-second budget used
	// when server.rate_limit is not set.
	DefaultRateLimit = 20

	// DefaultShutdownTimeout is used when server.shutdown_timeout is not set.
	DefaultShutdownTimeout = 30
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Unset means DefaultRateLimit; a negative value disables limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// ShutdownTimeout bounds how long in-flight requests may take to drain.
	ShutdownTimeout int `koanf:"shutdown_timeout" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// envKey turns a raw env var name into a koanf key path.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix PLACES_
//   - Unmarshals into Config and validates required blocks/fields
//   - Sets default observability if missing
//   - Forces the observability service name and environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Observability variables overlay the defaults rather than replace them.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	// "" means unmarshal everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Server.RateLimit == 0 {
		mainConfig.Server.RateLimit = DefaultRateLimit
	}
	if mainConfig.Server.ShutdownTimeout == 0 {
		mainConfig.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// Observability is optional; nil means "not provided".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are never user-configurable, so
	// telemetry always lines up with Primary.Env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
