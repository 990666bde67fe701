package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/models"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/utils"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationBusy     = errors.New("conversation is still generating an answer")
)

// Engine is the resolution pipeline the chat service drives.
type Engine interface {
	Resolve(ctx context.Context, utterance string, cc agent.ConversationContext) (agent.Resolution, agent.ConversationContext, error)
	Shortcut(ctx context.Context, action agent.Action, cc agent.ConversationContext) (agent.Resolution, agent.ConversationContext, error)
}

// Delivery is an answer that has become visible in the transcript.
type Delivery struct {
	Question   models.ChatTurn
	Answer     models.ChatTurn
	Resolution agent.Resolution
}

type resolveFunc func(ctx context.Context, cc agent.ConversationContext) (agent.Resolution, agent.ConversationContext, error)

// ChatService keeps the in-memory conversations and delivers answers after
// the configured thinking time.
type ChatService struct {
	engine       Engine
	thinkingTime time.Duration
	now          func() time.Time

	mu            sync.RWMutex
	conversations map[uuid.UUID]*Conversation
}

func NewChatService(engine Engine, thinkingTime time.Duration) *ChatService {
	return &ChatService{
		engine:        engine,
		thinkingTime:  thinkingTime,
		now:           time.Now,
		conversations: make(map[uuid.UUID]*Conversation),
	}
}

func (s *ChatService) StartConversation() *Conversation {
	conv := newConversation(s.now())

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.mu.Unlock()

	log.Debug().Str("conversation_id", conv.ID.String()).Msg("💬 conversation started")
	return conv
}

func (s *ChatService) get(id uuid.UUID) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

// SubmitUtterance appends the question and resolves it in the background.
// The returned channel yields the answer once it is visible and is then
// closed. Blank input is ignored: no channel, no error, no transcript entry.
func (s *ChatService) SubmitUtterance(ctx context.Context, id uuid.UUID, text string) (<-chan Delivery, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	return s.start(ctx, id, text, func(ctx context.Context, cc agent.ConversationContext) (agent.Resolution, agent.ConversationContext, error) {
		return s.engine.Resolve(ctx, text, cc)
	})
}

// InvokeShortcut runs a quick action with the same delivery semantics as
// SubmitUtterance. The action's question is shown as the user turn.
func (s *ChatService) InvokeShortcut(ctx context.Context, id uuid.UUID, action agent.Action) (<-chan Delivery, error) {
	if _, err := agent.ParseAction(string(action)); err != nil {
		return nil, err
	}

	return s.start(ctx, id, action.Question(), func(ctx context.Context, cc agent.ConversationContext) (agent.Resolution, agent.ConversationContext, error) {
		return s.engine.Shortcut(ctx, action, cc)
	})
}

func (s *ChatService) start(ctx context.Context, id uuid.UUID, question string, resolve resolveFunc) (<-chan Delivery, error) {
	conv, err := s.get(id)
	if err != nil {
		return nil, err
	}

	turn := models.ChatTurn{Kind: models.TurnQuestion, Content: question, CreatedAt: s.now()}
	cc, gen, ok := conv.begin(turn)
	if !ok {
		return nil, ErrConversationBusy
	}

	out := make(chan Delivery, 1)
	// The answer still lands in the transcript if the caller goes away.
	go s.run(context.WithoutCancel(ctx), conv, gen, cc, turn, resolve, out)
	return out, nil
}

func (s *ChatService) run(ctx context.Context, conv *Conversation, gen uint64, cc agent.ConversationContext, question models.ChatTurn, resolve resolveFunc, out chan<- Delivery) {
	defer close(out)

	res, next, err := resolve(ctx, cc)
	if err != nil {
		utils.LogError("❌ resolution failed", err, map[string]interface{}{
			"conversation_id": conv.ID.String(),
		})
		conv.abort(gen)
		return
	}

	if s.thinkingTime > 0 {
		time.Sleep(s.thinkingTime)
	}

	answer := models.ChatTurn{Kind: models.TurnAnswer, Content: res.Answer, CreatedAt: s.now()}
	if !conv.deliver(gen, next, answer) {
		utils.LogWarn("⚠️ dropping answer for a conversation that was reset", map[string]interface{}{
			"conversation_id": conv.ID.String(),
			"source":          string(res.Source),
		})
		return
	}

	log.Debug().
		Str("conversation_id", conv.ID.String()).
		Str("source", string(res.Source)).
		Str("outcome", string(res.Outcome)).
		Msg("✅ answer delivered")

	out <- Delivery{Question: question, Answer: answer, Resolution: res}
}

// ResetConversation clears context and transcript. An answer still being
// generated is discarded when it arrives.
func (s *ChatService) ResetConversation(id uuid.UUID) error {
	conv, err := s.get(id)
	if err != nil {
		return err
	}
	conv.reset(s.now())
	return nil
}

func (s *ChatService) Transcript(id uuid.UUID) ([]models.ChatTurn, error) {
	conv, err := s.get(id)
	if err != nil {
		return nil, err
	}
	_, transcript, _ := conv.snapshot()
	return transcript, nil
}

func (s *ChatService) Context(id uuid.UUID) (agent.ConversationContext, error) {
	conv, err := s.get(id)
	if err != nil {
		return agent.ConversationContext{}, err
	}
	cc, _, _ := conv.snapshot()
	return cc, nil
}

// ConversationState is a read-only view of a conversation.
type ConversationState struct {
	ID         uuid.UUID                 `json:"id"`
	Context    agent.ConversationContext `json:"context"`
	Transcript []models.ChatTurn         `json:"transcript"`
	Generating bool                      `json:"generating"`
}

func (s *ChatService) State(id uuid.UUID) (*ConversationState, error) {
	conv, err := s.get(id)
	if err != nil {
		return nil, err
	}
	cc, transcript, generating := conv.snapshot()
	if transcript == nil {
		transcript = []models.ChatTurn{}
	}
	return &ConversationState{ID: conv.ID, Context: cc, Transcript: transcript, Generating: generating}, nil
}

// SweepIdle drops conversations idle for longer than maxIdle. Busy
// conversations are kept.
func (s *ChatService) SweepIdle(maxIdle time.Duration) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, conv := range s.conversations {
		idle, busy := conv.idleSince(now)
		if busy || idle <= maxIdle {
			continue
		}
		delete(s.conversations, id)
		removed++
	}
	return removed
}

func (s *ChatService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
