package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// SystemPrompt is the fixed instruction sent with every fallback request.
const SystemPrompt = "You are a helpful customer support agent for an electronics company. Answer the user's question as best as you can."

// User-facing degraded answers. Each outcome has its own wording so that a
// rate-limited reply can be told apart from a generic failure.
const (
	MessageNoAnswer    = "I'm sorry, I couldn't find an exact answer to your question. Please ask about our products, order tracking, payment methods, or return policy!"
	MessageUnavailable = "I'm sorry, I couldn't find an exact answer to your question and our AI assistant is currently unavailable. Please ask about our products, order tracking, payment methods, or return policy!"
	MessageRateLimited = "We're getting a lot of questions right now! Please wait a moment and try again. (AI assistant rate limit reached)"
)

// Outcome classifies a fallback attempt.
type Outcome string

const (
	OutcomeAnswered     Outcome = "answered"
	OutcomeNoCredential Outcome = "no_credential"
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeUnavailable  Outcome = "unavailable"
)

// Degraded reports whether the completion text is a canned fallback message.
func (o Outcome) Degraded() bool {
	return o != OutcomeAnswered
}

type Completion struct {
	Text    string  `json:"text"`
	Outcome Outcome `json:"outcome"`
}

// FallbackClient answers utterances the local catalog could not. It never
// fails: every error becomes one of the degraded messages.
type FallbackClient struct {
	provider LLMProvider
}

// NewFallbackClient wraps provider. A nil provider means no credential is
// configured and no network call will ever be made.
func NewFallbackClient(provider LLMProvider) *FallbackClient {
	return &FallbackClient{provider: provider}
}

// NewFallbackClientFromConfig builds the provider from cfg, degrading to
// local-only mode when the credential is missing.
func NewFallbackClientFromConfig(cfg *ProviderConfig) (*FallbackClient, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			log.Warn().Str("provider", string(cfg.Type)).Msg("⚠️ No LLM credential configured, answering from the local catalog only")
			return NewFallbackClient(nil), nil
		}
		return nil, err
	}

	log.Info().Str("provider", provider.GetProviderName()).Msg("🤖 Using LLM provider for fallback answers")
	return NewFallbackClient(provider), nil
}

// ProviderName returns the backing provider, or "none" in local-only mode.
func (c *FallbackClient) ProviderName() string {
	if c.provider == nil {
		return "none"
	}
	return c.provider.GetProviderName()
}

func (c *FallbackClient) Complete(ctx context.Context, utterance string) Completion {
	if c.provider == nil {
		return Completion{Text: MessageNoAnswer, Outcome: OutcomeNoCredential}
	}

	reply, err := c.provider.GenerateResponse(ctx, SystemPrompt, utterance)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			log.Warn().Err(err).Str("provider", c.provider.GetProviderName()).Msg("⚠️ LLM rate limit reached")
			return Completion{Text: MessageRateLimited, Outcome: OutcomeRateLimited}
		}
		log.Error().Err(err).Str("provider", c.provider.GetProviderName()).Msg("❌ LLM fallback failed")
		return Completion{Text: MessageUnavailable, Outcome: OutcomeUnavailable}
	}

	log.Debug().Int("chars", len(strings.TrimSpace(reply))).Msg("🤖 LLM fallback answered")
	return Completion{Text: reply, Outcome: OutcomeAnswered}
}
