package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	trendService *services.TrendService
}

func NewAIHandler(trendService *services.TrendService) *AIHandler {
	return &AIHandler{trendService: trendService}
}

// Trends always answers 200; source tells the client whether the data is live or the fallback set.
func (h *AIHandler) Trends(c *fiber.Ctx) error {
	var req dto.TrendsRequest
	if len(c.Body()) > 0 {
		// an unreadable body falls back to the default prompt
		_ = c.BodyParser(&req)
	}

	trends, source := h.trendService.GenerateTrends(c.UserContext(), req.Prompt)
	return c.JSON(dto.TrendsResponse{Success: true, Data: trends, Source: source})
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	reply, err := h.trendService.Chat(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrAIFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ChatResponse{
				Success: false, Error: err.Error(),
			})
		}
		return respondError(c, err)
	}

	return c.JSON(dto.ChatResponse{Success: true, Data: &dto.ChatReply{Reply: reply}})
}
