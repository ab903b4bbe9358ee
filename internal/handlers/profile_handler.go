package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileService.Get(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: profile})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	profile, err := h.profileService.Update(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Profile updated successfully", Data: profile})
}

func (h *ProfileHandler) UpdateStats(c *fiber.Ctx) error {
	var req dto.UpdateStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	stats, err := h.profileService.UpdateStats(c.UserContext(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Stats updated successfully", Data: stats})
}
