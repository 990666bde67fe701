package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/llm"
)

var (
	ErrEmptyInput    = errors.New("empty utterance")
	ErrUnknownAction = errors.New("unknown shortcut action")
)

// Source tells which path produced an answer.
type Source string

const (
	SourceLocal    Source = "local"
	SourceRemote   Source = "remote"
	SourceShortcut Source = "shortcut"
)

// State is a step of a single resolution.
type State string

const (
	StateIdle          State = "idle"
	StateResolving     State = "resolving"
	StateLocalHit      State = "local_hit"
	StateRemoteCalling State = "remote_calling"
	StateDelivered     State = "delivered"
)

type Resolution struct {
	Answer string `json:"answer"`
	Source Source `json:"source"`
	// Outcome is set only for remote answers.
	Outcome llm.Outcome `json:"outcome,omitempty"`
	Trace   []State     `json:"-"`
}

// Fallback answers utterances the catalog could not. Implementations must
// not fail; degraded answers are returned as text.
type Fallback interface {
	Complete(ctx context.Context, utterance string) llm.Completion
}

// Engine is the resolution pipeline: local catalog first, remote fallback
// on a miss, context update on every utterance.
type Engine struct {
	resolver *Resolver
	fallback Fallback
}

func NewEngine(knowledgeBase *kb.KnowledgeBase, fallback Fallback) *Engine {
	return &Engine{
		resolver: NewResolver(knowledgeBase),
		fallback: fallback,
	}
}

// Resolve runs one utterance through the pipeline and returns the answer
// with the updated context. Blank input returns ErrEmptyInput and leaves cc
// untouched. The remote call is attempted at most once.
func (e *Engine) Resolve(ctx context.Context, utterance string, cc ConversationContext) (Resolution, ConversationContext, error) {
	if strings.TrimSpace(utterance) == "" {
		return Resolution{}, cc, ErrEmptyInput
	}

	trace := []State{StateIdle, StateResolving}
	next := UpdateContext(cc, utterance)

	if answer, ok := e.resolver.Resolve(utterance); ok {
		trace = append(trace, StateLocalHit, StateDelivered)
		log.Debug().Str("source", string(SourceLocal)).Msg("📚 answered from catalog")
		return Resolution{Answer: answer, Source: SourceLocal, Trace: trace}, next, nil
	}

	trace = append(trace, StateRemoteCalling)
	completion := e.fallback.Complete(ctx, utterance)
	trace = append(trace, StateDelivered)

	return Resolution{
		Answer:  completion.Text,
		Source:  SourceRemote,
		Outcome: completion.Outcome,
		Trace:   trace,
	}, next, nil
}
