package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr            string        `env:"SOS_ADDR"             envDefault:":8080"`
	Region          string        `env:"SOS_REGION"           envDefault:"ES"`
	Locale          string        `env:"SOS_LOCALE"           envDefault:"es"`
	Store           string        `env:"SOS_STORE"            envDefault:"memory"`
	SQLitePath      string        `env:"SOS_SQLITE_PATH"      envDefault:"sosphone.db"`
	PostgresDSN     string        `env:"SOS_POSTGRES_DSN"`
	RevealStep      time.Duration `env:"SOS_REVEAL_STEP"      envDefault:"1s"`
	RateLimitRPS    int           `env:"SOS_RATE_LIMIT_RPS"   envDefault:"5"`
	RateLimitBurst  int           `env:"SOS_RATE_LIMIT_BURST" envDefault:"10"`
	ShutdownTimeout time.Duration `env:"SOS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Dev             bool          `env:"SOS_DEV"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case prefs.DriverMemory, prefs.DriverSQLite:
	case prefs.DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%w: SOS_POSTGRES_DSN is required for the postgres store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.RevealStep <= 0 {
		return fmt.Errorf("%w: SOS_REVEAL_STEP must be positive", ErrInvalidConfig)
	}
	if c.Region == "" {
		return fmt.Errorf("%w: SOS_REGION is required", ErrInvalidConfig)
	}
	return nil
}

func (c Config) StoreOptions() prefs.Options {
	return prefs.Options{Driver: c.Store, SQLitePath: c.SQLitePath, PostgresDSN: c.PostgresDSN}
}
