package kb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_KeepsMappingOrder(t *testing.T) {
	data := []byte(`
products:
  tablets:
    Zeta Tab:
      price: "₹10"
      specs: small
    Alpha Tab:
      specs: big
policies:
  warranty: two years
  returns: none
`)

	kb, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	products := kb.LookupAllProducts()
	if len(products) != 2 || products[0].Name != "Zeta Tab" || products[1].Name != "Alpha Tab" {
		t.Fatalf("unexpected product order: %+v", products)
	}
	if products[0].Attributes[0].Key != "price" {
		t.Errorf("expected price first, got %q", products[0].Attributes[0].Key)
	}

	policies := kb.Policies()
	if len(policies) != 2 || policies[0].Name != "warranty" || policies[1].Name != "returns" {
		t.Errorf("unexpected policy order: %+v", policies)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":            ``,
		"not a mapping":    `- a`,
		"unknown section":  "faq:\n  a: b\n",
		"nested attribute": "products:\n  phones:\n    X1:\n      specs:\n        - a\n",
		"duplicate":        "products:\n  a:\n    X1: {}\n  b:\n    x1: {}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("policies:\n  shipping: free\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if kb.Source() != SourceFile {
		t.Errorf("expected file source, got %q", kb.Source())
	}
	if p, ok := kb.LookupPolicy("shipping?"); !ok || p.Text != "free" {
		t.Errorf("unexpected policy: %+v", p)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
