// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DevSessionSecret is the session secret used when none is configured in
// development. It must never be used elsewhere.
const DevSessionSecret = "portview-development-session-secret"

// Config holds all configuration for the application.
type Config struct {
	Env        string `env:"APP_ENV" env-default:"development"`
	ServerAddr string `env:"SERVER_ADDR" env-default:":8080"`

	// Empty dataset paths select the embedded sample files.
	UsersFile  string `env:"USERS_FILE"`
	StocksFile string `env:"STOCKS_FILE"`

	SessionSecret      string        `env:"SESSION_SECRET"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"2h"`

	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"debug"`

	// RateLimit is the number of mutating requests per second allowed per IP.
	RateLimit float64 `env:"RATE_LIMIT" env-default:"10"`
}

// IsDevelopment reports whether the application runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for program entry points: it exits on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.SessionSecret = DevSessionSecret
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %v", c.RateLimit)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
