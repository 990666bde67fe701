package llm

import (
	"errors"
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantName string
		wantErr  error
	}{
		{"openai", ProviderConfig{Type: ProviderOpenAI, OpenAIKey: "k"}, "OpenAI", nil},
		{"groq", ProviderConfig{Type: ProviderGroq, GroqKey: "k"}, "Groq", nil},
		{"deepseek", ProviderConfig{Type: ProviderDeepSeek, DeepSeekKey: "k"}, "DeepSeek", nil},
		{"openai without key", ProviderConfig{Type: ProviderOpenAI, GroqKey: "k"}, "", ErrNoCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(&tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.GetProviderName() != tt.wantName {
				t.Errorf("expected %s, got %s", tt.wantName, p.GetProviderName())
			}
		})
	}

	if _, err := NewProvider(&ProviderConfig{Type: "mystery", OpenAIKey: "k"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLoadProviderFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_MAX_TOKENS", "")
	t.Setenv("LLM_TEMPERATURE", "")
	t.Setenv("LLM_TIMEOUT", "15s")

	cfg, err := LoadProviderFromEnv()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Type != ProviderOpenAI {
		t.Errorf("expected openai default, got %s", cfg.Type)
	}
	if cfg.APIKey() != "sk-test" {
		t.Errorf("unexpected key: %q", cfg.APIKey())
	}
	if cfg.MaxTokens != DefaultMaxTokens || cfg.Temperature != DefaultTemperature {
		t.Errorf("unexpected defaults: %d / %v", cfg.MaxTokens, cfg.Temperature)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
}

func TestLoadProviderFromEnv_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"LLM_MAX_TOKENS":  "lots",
		"LLM_TEMPERATURE": "3.5",
		"LLM_TIMEOUT":     "forever",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadProviderFromEnv(); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}
