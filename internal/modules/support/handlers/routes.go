package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the support API on router.
func RegisterRoutes(router fiber.Router, health *HealthHandler, kbHandler *KBHandler, conversations *ConversationHandler) {
	// Health
	router.Get("/health", health.GetHealth)

	// Knowledge Base
	router.Get("/knowledge-base", kbHandler.GetKnowledgeBase)

	// Conversations
	router.Post("/conversations", conversations.StartConversation)
	router.Get("/conversations/:id", conversations.GetConversation)
	router.Post("/conversations/:id/messages", conversations.SubmitMessage)
	router.Post("/conversations/:id/shortcuts/:action", conversations.InvokeShortcut)
	router.Post("/conversations/:id/reset", conversations.ResetConversation)
}
