package agent

import (
	"context"
	"fmt"
)

// Action identifies a quick-action button.
type Action string

const (
	ActionSpecs   Action = "specs"
	ActionOrder   Action = "order"
	ActionReturn  Action = "return"
	ActionPayment Action = "payment"
)

type shortcut struct {
	question string
	// answer is empty for actions routed through the full pipeline.
	answer string
	topic  Topic
}

var shortcuts = map[Action]shortcut{
	ActionSpecs: {
		question: "What are the specifications of your latest products?",
		topic:    TopicSpecs,
	},
	ActionOrder: {
		question: "How can I track my order?",
		answer:   "You can track your order by logging into your account on our website and visiting the 'My Orders' section. You will find real-time updates and tracking links for your shipments. If you need further assistance, please provide your order number.",
		topic:    TopicOrder,
	},
	ActionReturn: {
		question: "What is your return policy?",
		answer:   "Our return policy allows you to return unused items in their original packaging within 30 days of delivery. To initiate a return, go to your order history and select the item you wish to return, or contact our support team for help.",
		topic:    TopicReturn,
	},
	ActionPayment: {
		question: "What payment methods do you accept?",
		answer:   "We accept UPI, debit/credit cards, net banking, and popular wallets like Paytm and PhonePe. All transactions are secured and encrypted for your safety. If you have questions about a specific payment method, please ask!",
		topic:    TopicPayment,
	},
}

// Actions lists the shortcuts in display order.
func Actions() []Action {
	return []Action{ActionSpecs, ActionOrder, ActionReturn, ActionPayment}
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := shortcuts[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Question is the utterance shown in the transcript for the action.
func (a Action) Question() string {
	return shortcuts[a].question
}

// Shortcut answers a quick action. The action becomes the last topic.
// Canned actions bypass the resolver and the fallback. Specs runs its
// question through Resolve.
func (e *Engine) Shortcut(ctx context.Context, action Action, cc ConversationContext) (Resolution, ConversationContext, error) {
	sc, ok := shortcuts[action]
	if !ok {
		return Resolution{}, cc, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	cc.LastTopic = sc.topic

	if sc.answer == "" {
		return e.Resolve(ctx, sc.question, cc)
	}

	return Resolution{
		Answer: sc.answer,
		Source: SourceShortcut,
		Trace:  []State{StateIdle, StateDelivered},
	}, cc, nil
}
