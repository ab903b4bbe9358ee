package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	raw := c.Query("ideaId")
	if raw == "" {
		return fail(c, fiber.StatusBadRequest, "ideaId is required")
	}
	ideaID, err := uuid.Parse(raw)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "ideaId must be a valid id")
	}

	reviews, summary, err := h.reviewService.List(c.UserContext(), ideaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReviewListResponse{Success: true, Data: reviews, Summary: summary})
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	review, err := h.reviewService.Create(c.UserContext(), middleware.CurrentUser(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true, Message: h.message(review, "Review created successfully"), Data: review,
	})
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrReviewNotOwned)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	review, err := h.reviewService.Update(c.UserContext(), middleware.CurrentUser(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: h.message(review, "Review updated successfully"), Data: review})
}

// message swaps the success text for the moderation notice when the review was held.
func (h *ReviewHandler) message(review *models.Review, published string) string {
	if notice := h.reviewService.Notice(review); notice != "" {
		return notice
	}
	return published
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrReviewNotOwned)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.reviewService.Delete(c.UserContext(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Review deleted successfully"})
}

func (h *ReviewHandler) ToggleHelpful(c *fiber.Ctx) error {
	var req dto.HelpfulRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	resp, err := h.reviewService.ToggleHelpful(c.UserContext(), middleware.CurrentUser(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: resp})
}
