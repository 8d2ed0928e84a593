package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetEnv(t, "ENV", "PORT", "SECRET_KEY", "SESSION_TTL", "COOKIE_SECURE", "REPORT_WORKERS", "DB_DRIVER", "DB_PATH")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Path != "instance/finance.db" {
		t.Errorf("expected default db path, got %s", cfg.Database.Path)
	}
	if cfg.ReportWorkers != 4 {
		t.Errorf("expected 4 report workers, got %d", cfg.ReportWorkers)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	unsetEnv(t, "ENV")
	t.Setenv("PORT", "8081")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8081" {
		t.Errorf("expected port 8081, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h, got %s", cfg.SessionTTL)
	}
	if !cfg.CookieSecure {
		t.Error("expected secure cookies")
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Host != "db.internal" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
}

func TestFromEnv_RejectsDefaultSecretInProduction(t *testing.T) {
	unsetEnv(t, "SECRET_KEY", "SESSION_TTL", "DB_DRIVER")
	t.Setenv("ENV", "production")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for default secret in production")
	}
}

func TestFromEnv_RejectsUnknownDriver(t *testing.T) {
	unsetEnv(t, "ENV", "SESSION_TTL")
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
