package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDatabaseURL points at a local SQLite file so the API runs without a server
const DefaultDatabaseURL = "sqlite://paralympics.db"

// Config holds application configuration
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL" envDefault:"sqlite://paralympics.db"`
	Port            string        `env:"PORT" envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8081"`
	SeedData        bool          `env:"SEED_DATA" envDefault:"true"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads configuration from environment variables.
// Files are read with godotenv first; variables already set in the
// environment win over file values.
func LoadConfig(envFiles ...string) (*Config, error) {
	// Load .env file if it exists
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot work together
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	// SQLite is for local runs and tests only
	if c.IsProduction() && !strings.HasPrefix(c.DatabaseURL, "postgres") {
		return errors.New("production environment detected, but DATABASE_URL is not a PostgreSQL URL")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
