package kb

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/models"
)

func TestFromEntries(t *testing.T) {
	entries := []models.KnowledgeBaseEntry{
		{
			Type:    models.EntryTypeProduct,
			Title:   "Dell XPS 15",
			Content: datatypes.JSON(`{"category":"laptops","attributes":[{"key":"specs","value":"Intel i9"},{"key":"price","value":"₹1,79,990"}]}`),
		},
		{
			Type:    models.EntryTypePolicy,
			Title:   "return policy",
			Content: datatypes.JSON(`{"text":"30 days"}`),
		},
		{
			Type:    models.EntryTypeProduct,
			Title:   "Samsung Galaxy S24",
			Content: datatypes.JSON(`{"category":"smartphones","attributes":[{"key":"price","value":"₹79,999"}]}`),
		},
		{
			Type:    models.EntryTypeProduct,
			Title:   "MacBook Air M2",
			Content: datatypes.JSON(`{"category":"laptops","attributes":[]}`),
		},
		{
			Type:    "faq",
			Title:   "ignored",
			Content: datatypes.JSON(`{"question":"?","answer":"!"}`),
		},
	}

	kb, err := FromEntries(entries)
	if err != nil {
		t.Fatalf("FromEntries failed: %v", err)
	}

	cats := kb.Categories()
	if len(cats) != 2 || cats[0].Name != "laptops" || cats[1].Name != "smartphones" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
	if len(cats[0].Products) != 2 || cats[0].Products[1].Name != "MacBook Air M2" {
		t.Errorf("unexpected laptops: %+v", cats[0].Products)
	}

	p, ok := kb.LookupProduct("dell xps 15")
	if !ok || p.Attributes[0].Key != "specs" || p.Attributes[1].Value != "₹1,79,990" {
		t.Errorf("unexpected product: %+v", p)
	}

	pol, ok := kb.LookupPolicy("your return policy")
	if !ok || pol.Text != "30 days" {
		t.Errorf("unexpected policy: %+v", pol)
	}
}

func TestFromEntries_InvalidContent(t *testing.T) {
	_, err := FromEntries([]models.KnowledgeBaseEntry{
		{Type: models.EntryTypeProduct, Title: "X", Content: datatypes.JSON(`{"attributes":[]}`)},
	})
	if err == nil {
		t.Error("expected error for product without category")
	}

	_, err = FromEntries([]models.KnowledgeBaseEntry{
		{Type: models.EntryTypePolicy, Title: "Y", Content: datatypes.JSON(`not json`)},
	})
	if err == nil {
		t.Error("expected error for malformed policy content")
	}
}

func TestLoadCatalog_Fallbacks(t *testing.T) {
	kb, err := LoadCatalog(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if kb.Source() != SourceEmbedded {
		t.Errorf("expected embedded catalog, got %q", kb.Source())
	}

	if _, err := LoadCatalog(context.Background(), nil, "/nonexistent/catalog.yaml"); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
