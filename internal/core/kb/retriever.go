package kb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/models"
)

// Retriever loads the catalog from the saas_knowledge_base table.
type Retriever struct {
	db *gorm.DB
}

func NewRetriever(db *gorm.DB) *Retriever {
	return &Retriever{db: db}
}

// GetKnowledgeBase reads every active product and policy row, ordered by
// position. It returns (nil, nil) when the table holds no catalog rows.
func (r *Retriever) GetKnowledgeBase(ctx context.Context) (*KnowledgeBase, error) {
	var entries []models.KnowledgeBaseEntry
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND type IN ?", true, []string{models.EntryTypeProduct, models.EntryTypePolicy}).
		Order("position ASC").
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch knowledge base entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	kb, err := FromEntries(entries)
	if err != nil {
		return nil, err
	}
	kb.source = SourceDatabase
	return kb, nil
}

// FromEntries builds a catalog from database rows already sorted by
// position. Categories appear in the order of their first product.
func FromEntries(entries []models.KnowledgeBaseEntry) (*KnowledgeBase, error) {
	var (
		categories []Category
		policies   []PolicyEntry
		catIndex   = make(map[string]int)
	)

	for _, entry := range entries {
		switch entry.Type {
		case models.EntryTypeProduct:
			var content models.ProductContent
			if err := json.Unmarshal(entry.Content, &content); err != nil {
				return nil, fmt.Errorf("product %q: invalid content: %w", entry.Title, err)
			}
			if content.Category == "" {
				return nil, fmt.Errorf("product %q: category is required", entry.Title)
			}

			product := ProductEntry{Name: entry.Title, Category: content.Category}
			for _, a := range content.Attributes {
				product.Attributes = append(product.Attributes, Attribute{Key: a.Key, Value: a.Value})
			}

			idx, ok := catIndex[content.Category]
			if !ok {
				idx = len(categories)
				catIndex[content.Category] = idx
				categories = append(categories, Category{Name: content.Category})
			}
			categories[idx].Products = append(categories[idx].Products, product)

		case models.EntryTypePolicy:
			var content models.PolicyContent
			if err := json.Unmarshal(entry.Content, &content); err != nil {
				return nil, fmt.Errorf("policy %q: invalid content: %w", entry.Title, err)
			}
			policies = append(policies, PolicyEntry{Name: entry.Title, Text: content.Text})

		default:
			log.Debug().Str("type", entry.Type).Str("title", entry.Title).Msg("skipping non-catalog entry")
		}
	}

	return New(categories, policies)
}

// LoadCatalog picks the catalog source at start-up: database rows when a
// retriever is given and the table is populated, then the YAML file, then
// the embedded default.
func LoadCatalog(ctx context.Context, retriever *Retriever, file string) (*KnowledgeBase, error) {
	if retriever != nil {
		kb, err := retriever.GetKnowledgeBase(ctx)
		if err != nil {
			return nil, err
		}
		if kb != nil {
			return kb, nil
		}
		log.Warn().Msg("⚠️ knowledge base table is empty, falling back to bundled catalog")
	}

	if file != "" {
		return LoadFile(file)
	}
	return Default()
}
