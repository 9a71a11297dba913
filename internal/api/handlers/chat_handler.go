package handlers

import (
	"keeps/internal/dto"
	"keeps/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask godoc
// @Summary Ask the coverage assistant
// @Description Answers a question using the caller's policies, summary and top findings as context
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question"
// @Security Bearer
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ChatRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.chatService.Ask(c.UserContext(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to answer")
	}
	return c.JSON(resp)
}
