package agent

import (
	"strings"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/kb"
)

// Phrases asking for the whole catalog.
var catalogDumpPhrases = []string{
	"latest products",
	"all products",
	"all your products",
	"specifications of your products",
}

// Resolver answers from the local catalog only.
type Resolver struct {
	kb *kb.KnowledgeBase
}

func NewResolver(knowledgeBase *kb.KnowledgeBase) *Resolver {
	return &Resolver{kb: knowledgeBase}
}

// Resolve applies the rules in order (catalog dump, single product,
// policy) and stops at the first match. ok is false on a miss.
func (r *Resolver) Resolve(utterance string) (answer string, ok bool) {
	lower := strings.ToLower(utterance)

	if containsAny(lower, catalogDumpPhrases...) {
		return FormatCatalog(r.kb.LookupAllProducts()), true
	}

	if product, found := r.kb.LookupProduct(utterance); found {
		return FormatProduct(product), true
	}

	if policy, found := r.kb.LookupPolicy(utterance); found {
		return policy.Text, true
	}

	return "", false
}

// FormatProduct renders a single-product answer.
func FormatProduct(p kb.ProductEntry) string {
	var sb strings.Builder
	sb.WriteString("Here are the specifications for ")
	sb.WriteString(p.Name)
	sb.WriteString(":\n")
	writeAttributes(&sb, p.Attributes)
	return sb.String()
}

// FormatCatalog renders every product with a bold markdown heading.
func FormatCatalog(products []kb.ProductEntry) string {
	var sb strings.Builder
	sb.WriteString("Here are the specifications for our latest products:\n")
	for _, p := range products {
		sb.WriteString("\n**")
		sb.WriteString(p.Name)
		sb.WriteString("**\n")
		writeAttributes(&sb, p.Attributes)
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeAttributes(sb *strings.Builder, attrs []kb.Attribute) {
	for i, a := range attrs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(a.Key)
		sb.WriteString(": ")
		sb.WriteString(a.Value)
	}
}
