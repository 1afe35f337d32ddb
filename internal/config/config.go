package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"bagpresto/internal/config/configs"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the table store: postgres, or memory for demos
	// backed by the built-in fixtures.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Backend carries the mandatory connection settings (BACKEND_URL,
	// BACKEND_API_KEY).
	Backend configs.Backend `envPrefix:"BACKEND_"`

	// Psql tunes the PostgreSQL store. Environment variables prefixed with
	// PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Auth    configs.Auth    `envPrefix:"AUTH_"`
	Redis   configs.Redis   `envPrefix:"REDIS_"`
	Storage configs.Storage `envPrefix:"STORAGE_"`
}

// Load reads configuration from environment variables into a Config. A
// missing required variable or an unknown store driver is an error; all
// other fields fall back to their defaults.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}
