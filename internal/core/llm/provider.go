package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// LLMProvider is a chat-completion backend used for remote fallback answers.
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
)

// Request defaults for the support fallback: short, near-deterministic answers.
const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 256
	DefaultTemperature = float32(0.2)
)

var (
	// ErrNoCredential means the selected provider has no API key configured.
	ErrNoCredential = errors.New("no API credential configured")

	// ErrRateLimited wraps provider errors caused by an HTTP 429.
	ErrRateLimited = errors.New("rate limited")
)

type ProviderConfig struct {
	Type ProviderType

	// API Keys
	OpenAIKey   string
	GroqKey     string
	DeepSeekKey string

	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int

	// Timeout bounds a single request. Zero leaves the transport default.
	Timeout time.Duration
}

// APIKey returns the credential of the selected provider.
func (c *ProviderConfig) APIKey() string {
	switch c.Type {
	case ProviderOpenAI:
		return c.OpenAIKey
	case ProviderGroq:
		return c.GroqKey
	case ProviderDeepSeek:
		return c.DeepSeekKey
	}
	return ""
}

// NewProvider builds the configured provider. A missing credential yields
// ErrNoCredential, which callers treat as local-only mode.
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	if cfg.APIKey() == "" {
		switch cfg.Type {
		case ProviderOpenAI, ProviderGroq, ProviderDeepSeek:
			return nil, fmt.Errorf("%s: %w", cfg.Type, ErrNoCredential)
		}
	}

	switch cfg.Type {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderGroq:
		return NewGroqProvider(cfg.GroqKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.DeepSeekKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv load config dari environment variables
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = string(ProviderOpenAI)
	}

	cfg := &ProviderConfig{
		Type:        ProviderType(providerType),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		GroqKey:     os.Getenv("GROQ_API_KEY"),
		DeepSeekKey: os.Getenv("DEEPSEEK_API_KEY"),
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		Model:       os.Getenv("LLM_MODEL"),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}

	if raw := os.Getenv("LLM_MAX_TOKENS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LLM_MAX_TOKENS %q", raw)
		}
		cfg.MaxTokens = n
	}

	if raw := os.Getenv("LLM_TEMPERATURE"); raw != "" {
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil || f < 0 || f > 2 {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q", raw)
		}
		cfg.Temperature = float32(f)
	}

	if raw := os.Getenv("LLM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT %q", raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
