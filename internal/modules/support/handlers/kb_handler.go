package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/kb"
)

type KBHandler struct {
	knowledgeBase *kb.KnowledgeBase
}

func NewKBHandler(knowledgeBase *kb.KnowledgeBase) *KBHandler {
	return &KBHandler{knowledgeBase: knowledgeBase}
}

// KnowledgeBaseResponse is the catalog as loaded at startup
type KnowledgeBaseResponse struct {
	Source     string           `json:"source" example:"embedded"`
	Categories []kb.Category    `json:"categories"`
	Policies   []kb.PolicyEntry `json:"policies"`
}

// GetKnowledgeBase godoc
// @Summary Get the product catalog
// @Description Returns product categories and store policies in declaration order
// @Tags KnowledgeBase
// @Produce json
// @Success 200 {object} KnowledgeBaseResponse
// @Router /knowledge-base [get]
func (h *KBHandler) GetKnowledgeBase(c *fiber.Ctx) error {
	return c.JSON(KnowledgeBaseResponse{
		Source:     h.knowledgeBase.Source(),
		Categories: h.knowledgeBase.Categories(),
		Policies:   h.knowledgeBase.Policies(),
	})
}
