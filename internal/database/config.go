package database

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string `env:"DB_DRIVER" env-default:"sqlite" env-description:"sqlite or postgres"`

	// SQLite
	Path string `env:"DB_PATH" env-default:"instance/finance.db"`

	// PostgreSQL
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"fintrack"`
	Password string `env:"DB_PASSWORD" env-default:"fintrack"`
	DBName   string `env:"DB_NAME" env-default:"fintrack"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// NewConfig reads the database configuration from the environment.
func NewConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read database config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the driver is supported.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
		return nil
	}
	return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.Driver, DriverSQLite, DriverPostgres)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// MigrateURL returns the golang-migrate database URL for the configured driver.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverPostgres {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     c.Host + ":" + c.Port,
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
		}
		return u.String()
	}
	return "sqlite3://" + c.Path
}
