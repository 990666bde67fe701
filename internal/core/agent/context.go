package agent

import "strings"

// Topic is the most recently inferred subject of the conversation.
type Topic string

const (
	TopicNone           Topic = ""
	TopicSpecs          Topic = "specs"
	TopicOrder          Topic = "order"
	TopicReturn         Topic = "return"
	TopicPayment        Topic = "payment"
	TopicReturnPolicy   Topic = "returnPolicy"
	TopicPaymentMethods Topic = "paymentMethods"
	TopicWarranty       Topic = "warranty"
)

// ProductType is the product family the user last mentioned.
type ProductType string

const (
	ProductTypeNone        ProductType = ""
	ProductTypeSmartphones ProductType = "smartphones"
	ProductTypeLaptops     ProductType = "laptops"
)

// ConversationContext is the per-conversation state carried between turns.
// It is a plain value: callers pass it into a resolution and store the
// returned copy. Matching does not read it yet.
type ConversationContext struct {
	LastTopic   Topic       `json:"last_topic,omitempty"`
	ProductType ProductType `json:"product_type,omitempty"`
}

func (c ConversationContext) IsEmpty() bool {
	return c == ConversationContext{}
}

// UpdateContext applies the keyword rules to utterance. A family with no
// keyword present keeps its previous value.
func UpdateContext(cc ConversationContext, utterance string) ConversationContext {
	lower := strings.ToLower(utterance)

	switch {
	case containsAny(lower, "iphone", "samsung"):
		cc.ProductType = ProductTypeSmartphones
	case containsAny(lower, "macbook", "dell"):
		cc.ProductType = ProductTypeLaptops
	}

	switch {
	case containsAny(lower, "return", "refund"):
		cc.LastTopic = TopicReturnPolicy
	case containsAny(lower, "payment", "pay"):
		cc.LastTopic = TopicPaymentMethods
	case strings.Contains(lower, "warranty"):
		cc.LastTopic = TopicWarranty
	}

	return cc
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
