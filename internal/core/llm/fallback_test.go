package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubProvider) GetProviderName() string { return "stub" }

func TestFallbackClient_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		wantText string
		want     Outcome
	}{
		{
			name:     "answered verbatim",
			provider: &stubProvider{reply: "  Try our Dell XPS 15.\n"},
			wantText: "  Try our Dell XPS 15.\n",
			want:     OutcomeAnswered,
		},
		{
			name:     "rate limited",
			provider: &stubProvider{err: fmt.Errorf("OpenAI: %w", ErrRateLimited)},
			wantText: MessageRateLimited,
			want:     OutcomeRateLimited,
		},
		{
			name:     "network failure",
			provider: &stubProvider{err: errors.New("dial tcp: connection refused")},
			wantText: MessageUnavailable,
			want:     OutcomeUnavailable,
		},
		{
			name:     "deadline",
			provider: &stubProvider{err: context.DeadlineExceeded},
			wantText: MessageUnavailable,
			want:     OutcomeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewFallbackClient(tt.provider)
			got := client.Complete(context.Background(), "anything")

			if got.Text != tt.wantText {
				t.Errorf("unexpected text: %q", got.Text)
			}
			if got.Outcome != tt.want {
				t.Errorf("expected outcome %s, got %s", tt.want, got.Outcome)
			}
			if tt.provider.calls != 1 {
				t.Errorf("expected exactly one provider call, got %d", tt.provider.calls)
			}
		})
	}
}

func TestFallbackClient_NoCredential(t *testing.T) {
	client := NewFallbackClient(nil)

	got := client.Complete(context.Background(), "Can you recommend a good toaster?")
	if got.Text != MessageNoAnswer {
		t.Errorf("unexpected text: %q", got.Text)
	}
	if got.Outcome != OutcomeNoCredential {
		t.Errorf("unexpected outcome: %s", got.Outcome)
	}
	if client.ProviderName() != "none" {
		t.Errorf("unexpected provider name: %s", client.ProviderName())
	}
}

func TestFallbackClient_DegradedMessagesDiffer(t *testing.T) {
	msgs := map[string]bool{MessageNoAnswer: true, MessageUnavailable: true, MessageRateLimited: true}
	if len(msgs) != 3 {
		t.Error("degraded messages must be textually distinct")
	}
	if OutcomeAnswered.Degraded() || !OutcomeRateLimited.Degraded() {
		t.Error("unexpected Degraded classification")
	}
}

func TestFallbackClient_EndToEndRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Rate limit reached", "type": "requests"},
		})
	}))
	defer server.Close()

	client, err := NewFallbackClientFromConfig(&ProviderConfig{
		Type:      ProviderOpenAI,
		OpenAIKey: "test-key",
		BaseURL:   server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	got := client.Complete(context.Background(), "Can you recommend a good toaster?")
	if got.Outcome != OutcomeRateLimited || got.Text != MessageRateLimited {
		t.Errorf("unexpected completion: %+v", got)
	}
}

func TestNewFallbackClientFromConfig_MissingKey(t *testing.T) {
	client, err := NewFallbackClientFromConfig(&ProviderConfig{Type: ProviderGroq})
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if got := client.Complete(context.Background(), "hi"); got.Outcome != OutcomeNoCredential {
		t.Errorf("expected no-credential outcome, got %s", got.Outcome)
	}
}
