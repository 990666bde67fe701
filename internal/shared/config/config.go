package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort                 = "8080"
	defaultEnv                  = "development"
	defaultThinkingTime         = 600 * time.Millisecond
	defaultSessionSweepSchedule = "@every 5m"
	defaultSessionMaxIdle       = 30 * time.Minute
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string // optional, catalog is embedded when empty
	CatalogFile string // optional YAML catalog overriding the embedded one

	// ThinkingTime is the pause before an answer becomes visible.
	ThinkingTime time.Duration

	SessionSweepSchedule string
	SessionMaxIdle       time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:                 os.Getenv("PORT"),
		Env:                  os.Getenv("ENV"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		CatalogFile:          os.Getenv("CATALOG_FILE"),
		ThinkingTime:         durationFromEnv("THINKING_TIME", defaultThinkingTime),
		SessionSweepSchedule: os.Getenv("SESSION_SWEEP_SCHEDULE"),
		SessionMaxIdle:       durationFromEnv("SESSION_MAX_IDLE", defaultSessionMaxIdle),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.SessionSweepSchedule == "" {
		cfg.SessionSweepSchedule = defaultSessionSweepSchedule
	}

	return cfg
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("⚠️ invalid duration, using default")
		return fallback
	}
	return d
}
