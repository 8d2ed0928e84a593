package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"fintrack/internal/database"
)

// DevSecretKey signs sessions when SECRET_KEY is unset. It is rejected in production.
const DevSecretKey = "dev-secret-key-change-this-in-production"

// Config holds application configuration
type Config struct {
	Env  string `env:"ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"5000"`

	// Sessions
	SecretKey    string        `env:"SECRET_KEY" env-default:"dev-secret-key-change-this-in-production"`
	SessionTTL   time.Duration `env:"SESSION_TTL" env-default:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" env-default:"false"`

	// Reports
	ReportWorkers int `env:"REPORT_WORKERS" env-default:"4"`

	Database database.Config
}

// Load loads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Env == "production" && c.SecretKey == DevSecretKey {
		return errors.New("SECRET_KEY must be set in production")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.ReportWorkers < 1 {
		c.ReportWorkers = 1
	}
	return c.Database.Validate()
}
