package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"ads-board/internal/config/configs"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// logged at startup.
	Env string `env:"ENV" envDefault:"prod"`

	// StorageDriver selects the repository backend: "postgres" or "sqlite".
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// SeedDemoAds inserts that many demo ads at startup when positive.
	SeedDemoAds int `env:"SEED_DEMO_ADS" envDefault:"0"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	Hash configs.Hash `envPrefix:"HASH_"`
}

// Load reads an optional .env file from the working directory, then parses
// environment variables into a Config. Variables already present in the
// environment win over the file. All fields are loaded with their specified
// defaults when no environment variable is provided.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.SeedDemoAds < 0 {
		return fmt.Errorf("SEED_DEMO_ADS must not be negative, got %d", c.SeedDemoAds)
	}
	return nil
}
