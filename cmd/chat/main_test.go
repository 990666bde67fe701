package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/services"
)

func newTestService(t *testing.T) *services.ChatService {
	t.Helper()
	catalog, err := kb.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return services.NewChatService(agent.NewEngine(catalog, llm.NewFallbackClient(nil)), 0)
}

func TestRunChat(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"What are the specs of the Dell XPS 15?",
		"",
		"/payment",
		"Can you recommend a good toaster?",
		"/refund",
		"/home",
		"/quit",
		"never read",
	}, "\n"))
	var out bytes.Buffer

	if err := runChat(context.Background(), in, &out, newTestService(t)); err != nil {
		t.Fatalf("runChat failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Welcome to ProductAI!",
		"ProductAI: Here are the specifications for Dell XPS 15:",
		"You: " + agent.ActionPayment.Question(),
		"ProductAI: We accept UPI",
		"ProductAI: " + llm.MessageNoAnswer,
		"Unknown command /refund",
		"Bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if strings.Count(got, "Welcome to ProductAI!") != 2 {
		t.Errorf("expected welcome again after /home")
	}
	if strings.Contains(got, "never read") {
		t.Errorf("input after /quit must be ignored")
	}
}

func TestRunChat_EOF(t *testing.T) {
	var out bytes.Buffer
	if err := runChat(context.Background(), strings.NewReader("What is your return policy?"), &out, newTestService(t)); err != nil {
		t.Fatalf("runChat failed: %v", err)
	}
	if !strings.Contains(out.String(), "ProductAI: 30-day return policy for unused items in original packaging") {
		t.Errorf("unexpected output\n%s", out.String())
	}
}
