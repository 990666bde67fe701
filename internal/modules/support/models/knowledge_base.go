package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Knowledge base entry types
const (
	EntryTypeProduct = "product"
	EntryTypePolicy  = "policy"
)

// KnowledgeBaseEntry is one catalog row. Content layout depends on Type:
//
//	product: {"category": "laptops", "attributes": [{"key": "price", "value": "₹1,79,990"}]}
//	policy:  {"text": "30-day return policy ..."}
//
// Attributes are a list rather than an object because jsonb does not keep
// key order.
type KnowledgeBaseEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type      string         `gorm:"type:text;not null;index:idx_kb_type_position" json:"type"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Content   datatypes.JSON `gorm:"type:jsonb;not null" json:"content"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	Position  int            `gorm:"not null;default:0;index:idx_kb_type_position" json:"position"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (KnowledgeBaseEntry) TableName() string {
	return "saas_knowledge_base"
}

// BeforeCreate sets UUID before creating
func (kb *KnowledgeBaseEntry) BeforeCreate(tx *gorm.DB) error {
	if kb.ID == uuid.Nil {
		kb.ID = uuid.New()
	}
	return nil
}

type ProductContent struct {
	Category   string             `json:"category"`
	Attributes []ProductAttribute `json:"attributes"`
}

type ProductAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type PolicyContent struct {
	Text string `json:"text"`
}
