package llm

import "time"

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewGroqProvider uses the OpenAI-compatible API with Groq's base URL.
func NewGroqProvider(apiKey, baseURL, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAIProvider {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return newCompatibleProvider("Groq", apiKey, baseURL, model, temperature, maxTokens, timeout)
}
