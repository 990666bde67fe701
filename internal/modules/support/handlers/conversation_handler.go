package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/services"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/utils"
)

type ConversationHandler struct {
	chatService *services.ChatService
}

func NewConversationHandler(chatService *services.ChatService) *ConversationHandler {
	return &ConversationHandler{chatService: chatService}
}

// MessageRequest represents request body for submitting an utterance
type MessageRequest struct {
	Text string `json:"text" example:"What are the specs of the Dell XPS 15?"`
}

// AnswerResponse is returned once the answer is visible in the transcript
type AnswerResponse struct {
	Question string `json:"question" example:"What is your return policy?"`
	Answer   string `json:"answer" example:"30-day return policy for unused items in original packaging"`
	Source   string `json:"source" example:"local"`
	Outcome  string `json:"outcome,omitempty" example:"answered"`
}

// StartConversation godoc
// @Summary Start a conversation
// @Description Creates an empty conversation with no context and no transcript
// @Tags Conversations
// @Produce json
// @Success 201 {object} map[string]string
// @Router /conversations [post]
func (h *ConversationHandler) StartConversation(c *fiber.Ctx) error {
	conv := h.chatService.StartConversation()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": conv.ID.String(),
	})
}

// GetConversation godoc
// @Summary Get conversation state
// @Description Returns the context, transcript, and whether an answer is being generated
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} services.ConversationState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}

	state, err := h.chatService.State(id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(state)
}

// SubmitMessage godoc
// @Summary Ask a question
// @Description Resolves the utterance from the catalog, or from the AI assistant when the catalog has no answer. Blank input is ignored and returns 204.
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param data body MessageRequest true "Utterance"
// @Success 200 {object} AnswerResponse
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) SubmitMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}

	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	ch, err := h.chatService.SubmitUtterance(c.UserContext(), id, req.Text)
	if err != nil {
		return h.writeError(c, err)
	}
	if ch == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return h.await(c, ch)
}

// InvokeShortcut godoc
// @Summary Run a quick action
// @Description Answers one of the predefined shortcuts: specs, order, return, payment
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Param action path string true "Shortcut action" Enums(specs, order, return, payment)
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /conversations/{id}/shortcuts/{action} [post]
func (h *ConversationHandler) InvokeShortcut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}

	action, err := agent.ParseAction(c.Params("action"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ch, err := h.chatService.InvokeShortcut(c.UserContext(), id, action)
	if err != nil {
		return h.writeError(c, err)
	}
	return h.await(c, ch)
}

// ResetConversation godoc
// @Summary Go home
// @Description Clears the context and transcript. An answer still being generated is discarded.
// @Tags Conversations
// @Param id path string true "Conversation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/reset [post]
func (h *ConversationHandler) ResetConversation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}

	if err := h.chatService.ResetConversation(id); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConversationHandler) await(c *fiber.Ctx, ch <-chan services.Delivery) error {
	d, ok := <-ch
	if !ok {
		// reset while thinking, or the resolution failed
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "answer discarded"})
	}

	return c.JSON(AnswerResponse{
		Question: d.Question.Content,
		Answer:   d.Answer.Content,
		Source:   string(d.Resolution.Source),
		Outcome:  string(d.Resolution.Outcome),
	})
}

func (h *ConversationHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrConversationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrConversationBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, agent.ErrUnknownAction):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogError("❌ conversation request failed", err, map[string]interface{}{
		"path": c.Path(),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
