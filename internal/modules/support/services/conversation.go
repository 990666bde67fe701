package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/models"
)

// Conversation owns one user's context and transcript. At most one
// resolution runs against it at a time.
type Conversation struct {
	ID uuid.UUID

	mu         sync.Mutex
	context    agent.ConversationContext
	transcript []models.ChatTurn
	generating bool
	// generation is bumped by reset so late answers can be recognised.
	generation uint64
	lastActive time.Time
}

func newConversation(now time.Time) *Conversation {
	return &Conversation{
		ID:         uuid.New(),
		lastActive: now,
	}
}

// begin marks the conversation busy and appends the question. It returns
// false if a resolution is already in flight.
func (c *Conversation) begin(question models.ChatTurn) (agent.ConversationContext, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generating {
		return agent.ConversationContext{}, 0, false
	}
	c.generating = true
	c.transcript = append(c.transcript, question)
	c.lastActive = question.CreatedAt
	return c.context, c.generation, true
}

// deliver stores the answer and the new context unless the conversation
// was reset since gen was issued.
func (c *Conversation) deliver(gen uint64, next agent.ConversationContext, answer models.ChatTurn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}
	c.context = next
	c.transcript = append(c.transcript, answer)
	c.generating = false
	c.lastActive = answer.CreatedAt
	return true
}

func (c *Conversation) abort(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation == gen {
		c.generating = false
	}
}

func (c *Conversation) reset(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.context = agent.ConversationContext{}
	c.transcript = nil
	c.generating = false
	c.generation++
	c.lastActive = now
}

func (c *Conversation) snapshot() (agent.ConversationContext, []models.ChatTurn, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.context, slices.Clone(c.transcript), c.generating
}

func (c *Conversation) idleSince(now time.Time) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastActive), c.generating
}
