package kb

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog sources reported by KnowledgeBase.Source.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Attribute is one key/value line of a product, e.g. "price: ₹79,999".
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ProductEntry struct {
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute returns the value stored under key.
func (p ProductEntry) Attribute(key string) (string, bool) {
	for _, a := range p.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

type PolicyEntry struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type Category struct {
	Name     string         `json:"name"`
	Products []ProductEntry `json:"products"`
}

// KnowledgeBase is the read-only product and policy catalog. Lookups scan
// entries in declaration order and the first name contained in the
// utterance wins, so a short name that is a prefix of a longer one
// ("iPhone 15 Pro" vs "iPhone 15 Pro Max") shadows it when declared first.
type KnowledgeBase struct {
	categories []Category
	policies   []PolicyEntry
	source     string

	// lowercased names, parallel to the flattened products / policies
	products    []ProductEntry
	productKeys []string
	policyKeys  []string
}

// New validates and copies the given catalog. Product names must be unique
// across all categories since matching never qualifies them by category.
func New(categories []Category, policies []PolicyEntry) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{source: SourceEmbedded}
	seen := make(map[string]string)

	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("category name is empty")
		}

		copied := Category{Name: cat.Name, Products: make([]ProductEntry, 0, len(cat.Products))}
		for _, p := range cat.Products {
			key := strings.ToLower(strings.TrimSpace(p.Name))
			if key == "" {
				return nil, fmt.Errorf("product with empty name in category %q", cat.Name)
			}
			if other, dup := seen[key]; dup {
				return nil, fmt.Errorf("duplicate product %q in categories %q and %q", p.Name, other, cat.Name)
			}
			seen[key] = cat.Name

			entry := ProductEntry{
				Name:       p.Name,
				Category:   cat.Name,
				Attributes: slices.Clone(p.Attributes),
			}
			copied.Products = append(copied.Products, entry)
			kb.products = append(kb.products, entry)
			kb.productKeys = append(kb.productKeys, key)
		}
		kb.categories = append(kb.categories, copied)
	}

	policyNames := make(map[string]struct{})
	for _, pol := range policies {
		key := strings.ToLower(strings.TrimSpace(pol.Name))
		if key == "" {
			return nil, fmt.Errorf("policy with empty name")
		}
		if _, dup := policyNames[key]; dup {
			return nil, fmt.Errorf("duplicate policy %q", pol.Name)
		}
		policyNames[key] = struct{}{}

		kb.policies = append(kb.policies, pol)
		kb.policyKeys = append(kb.policyKeys, key)
	}

	return kb, nil
}

// Source tells where the catalog was loaded from.
func (kb *KnowledgeBase) Source() string {
	return kb.source
}

// LookupProduct returns the first product whose name occurs in utterance,
// ignoring case.
func (kb *KnowledgeBase) LookupProduct(utterance string) (ProductEntry, bool) {
	lower := strings.ToLower(utterance)
	for i, key := range kb.productKeys {
		if strings.Contains(lower, key) {
			return cloneProduct(kb.products[i]), true
		}
	}
	return ProductEntry{}, false
}

// LookupAllProducts lists every product, category by category.
func (kb *KnowledgeBase) LookupAllProducts() []ProductEntry {
	out := make([]ProductEntry, 0, len(kb.products))
	for _, p := range kb.products {
		out = append(out, cloneProduct(p))
	}
	return out
}

// LookupPolicy returns the first policy whose name occurs in utterance,
// ignoring case.
func (kb *KnowledgeBase) LookupPolicy(utterance string) (PolicyEntry, bool) {
	lower := strings.ToLower(utterance)
	for i, key := range kb.policyKeys {
		if strings.Contains(lower, key) {
			return kb.policies[i], true
		}
	}
	return PolicyEntry{}, false
}

func (kb *KnowledgeBase) Categories() []Category {
	out := make([]Category, 0, len(kb.categories))
	for _, c := range kb.categories {
		products := make([]ProductEntry, 0, len(c.Products))
		for _, p := range c.Products {
			products = append(products, cloneProduct(p))
		}
		out = append(out, Category{Name: c.Name, Products: products})
	}
	return out
}

func (kb *KnowledgeBase) Policies() []PolicyEntry {
	return slices.Clone(kb.policies)
}

func cloneProduct(p ProductEntry) ProductEntry {
	p.Attributes = slices.Clone(p.Attributes)
	return p
}
