package agent

import "testing"

func TestUpdateContext(t *testing.T) {
	tests := []struct {
		name      string
		start     ConversationContext
		utterance string
		want      ConversationContext
	}{
		{
			name:      "smartphone family",
			utterance: "How much is the iPhone 15 Pro?",
			want:      ConversationContext{ProductType: ProductTypeSmartphones},
		},
		{
			name:      "laptop family",
			utterance: "Is the Dell any good?",
			want:      ConversationContext{ProductType: ProductTypeLaptops},
		},
		{
			name:      "smartphones win over laptops",
			utterance: "samsung or macbook?",
			want:      ConversationContext{ProductType: ProductTypeSmartphones},
		},
		{
			name:      "refund sets return policy",
			utterance: "I want a REFUND",
			want:      ConversationContext{LastTopic: TopicReturnPolicy},
		},
		{
			name:      "return beats payment",
			utterance: "can I return it and get my payment back",
			want:      ConversationContext{LastTopic: TopicReturnPolicy},
		},
		{
			name:      "pay matches payment methods",
			utterance: "can I pay later",
			want:      ConversationContext{LastTopic: TopicPaymentMethods},
		},
		{
			name:      "warranty",
			utterance: "what about warranty on the macbook",
			want:      ConversationContext{LastTopic: TopicWarranty, ProductType: ProductTypeLaptops},
		},
		{
			name:      "no keyword keeps previous values",
			start:     ConversationContext{LastTopic: TopicWarranty, ProductType: ProductTypeLaptops},
			utterance: "thanks!",
			want:      ConversationContext{LastTopic: TopicWarranty, ProductType: ProductTypeLaptops},
		},
		{
			name:      "only one family changes",
			start:     ConversationContext{LastTopic: TopicWarranty, ProductType: ProductTypeLaptops},
			utterance: "and the samsung?",
			want:      ConversationContext{LastTopic: TopicWarranty, ProductType: ProductTypeSmartphones},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateContext(tt.start, tt.utterance)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestUpdateContext_Idempotent(t *testing.T) {
	cc := ConversationContext{}
	for i := 0; i < 2; i++ {
		cc = UpdateContext(cc, "tell me about the iphone")
		if cc.ProductType != ProductTypeSmartphones {
			t.Fatalf("turn %d: expected smartphones, got %q", i+1, cc.ProductType)
		}
	}
}

func TestConversationContext_IsEmpty(t *testing.T) {
	if !(ConversationContext{}).IsEmpty() {
		t.Error("zero value must be empty")
	}
	if (ConversationContext{LastTopic: TopicOrder}).IsEmpty() {
		t.Error("context with topic must not be empty")
	}
}
