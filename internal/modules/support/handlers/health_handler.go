package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	providerName  string
	catalogSource string
}

func NewHealthHandler(providerName, catalogSource string) *HealthHandler {
	return &HealthHandler{providerName: providerName, catalogSource: catalogSource}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "support-api",
		"provider": h.providerName,
		"catalog":  h.catalogSource,
	})
}
