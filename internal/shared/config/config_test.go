package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("THINKING_TIME", "")
	t.Setenv("SESSION_SWEEP_SCHEDULE", "")
	t.Setenv("SESSION_MAX_IDLE", "")

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected development env, got %q", cfg.Env)
	}
	if cfg.ThinkingTime != 600*time.Millisecond {
		t.Errorf("expected 600ms thinking time, got %v", cfg.ThinkingTime)
	}
	if cfg.SessionSweepSchedule != "@every 5m" {
		t.Errorf("unexpected sweep schedule: %q", cfg.SessionSweepSchedule)
	}
	if cfg.SessionMaxIdle != 30*time.Minute {
		t.Errorf("unexpected max idle: %v", cfg.SessionMaxIdle)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected no database url, got %q", cfg.DatabaseURL)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("THINKING_TIME", "0s")
	t.Setenv("SESSION_MAX_IDLE", "2h")
	t.Setenv("CATALOG_FILE", "/etc/productai/catalog.yaml")

	cfg := LoadConfig()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production config")
	}
	if cfg.ThinkingTime != 0 {
		t.Errorf("expected zero thinking time, got %v", cfg.ThinkingTime)
	}
	if cfg.SessionMaxIdle != 2*time.Hour {
		t.Errorf("expected 2h max idle, got %v", cfg.SessionMaxIdle)
	}
	if cfg.CatalogFile != "/etc/productai/catalog.yaml" {
		t.Errorf("unexpected catalog file: %q", cfg.CatalogFile)
	}
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("THINKING_TIME", "soon")
	t.Setenv("SESSION_MAX_IDLE", "-5m")

	cfg := LoadConfig()

	if cfg.ThinkingTime != 600*time.Millisecond {
		t.Errorf("expected default thinking time, got %v", cfg.ThinkingTime)
	}
	if cfg.SessionMaxIdle != 30*time.Minute {
		t.Errorf("expected default max idle, got %v", cfg.SessionMaxIdle)
	}
}
