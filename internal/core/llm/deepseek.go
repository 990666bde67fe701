package llm

import "time"

const deepSeekBaseURL = "https://api.deepseek.com"

// NewDeepSeekProvider uses the OpenAI-compatible API with DeepSeek's base URL.
func NewDeepSeekProvider(apiKey, baseURL, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAIProvider {
	if model == "" {
		model = "deepseek-chat"
	}
	if baseURL == "" {
		baseURL = deepSeekBaseURL
	}
	return newCompatibleProvider("DeepSeek", apiKey, baseURL, model, temperature, maxTokens, timeout)
}
