package config_test

import (
	"testing"
	"time"

	"github.com/iho/erpledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REFRESH_ENABLED", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.RefreshEnabled {
		t.Fatalf("expected background refresh to be disabled by default")
	}

	if cfg.RefreshInterval != 15*time.Minute {
		t.Fatalf("expected default refresh interval 15m, got %s", cfg.RefreshInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("MIGRATIONS_PATH", "internal/infrastructure/postgres/migrations")
	t.Setenv("REFRESH_ENABLED", "true")
	t.Setenv("REFRESH_INTERVAL", "1m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.MigrationsPath != "internal/infrastructure/postgres/migrations" {
		t.Fatalf("expected migrations path override, got %s", cfg.MigrationsPath)
	}

	if !cfg.RefreshEnabled || cfg.RefreshInterval != time.Minute {
		t.Fatalf("expected refresh settings to be set, got enabled=%v interval=%s", cfg.RefreshEnabled, cfg.RefreshInterval)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("REFRESH_ENABLED", "sometimes")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}

func TestLoadRejectsInconsistentValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"min above max conns", map[string]string{"DATABASE_MAX_CONNS": "2", "DATABASE_MIN_CONNS": "5"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"zero rate limit", map[string]string{"RATE_LIMIT_RPS": "0"}},
		{"zero refresh interval", map[string]string{"REFRESH_ENABLED": "true", "REFRESH_INTERVAL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
