package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BannerHandler struct {
	bannerService *services.BannerService
}

func NewBannerHandler(bannerService *services.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

func (h *BannerHandler) List(c *fiber.Ctx) error {
	banners, err := h.bannerService.List(c.UserContext(), optionalBool(c, "active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: banners})
}

func (h *BannerHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrBannerNotFound)
	if err != nil {
		return respondError(c, err)
	}

	banner, err := h.bannerService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: banner})
}

func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	banner, err := h.bannerService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true, Message: "Banner created successfully", Data: banner,
	})
}

func (h *BannerHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrBannerNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	banner, err := h.bannerService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Banner updated successfully", Data: banner})
}

func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, services.ErrBannerNotFound)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.bannerService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Message: "Banner deleted successfully"})
}

func (h *BannerHandler) track(counter repository.BannerCounter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, services.ErrBannerNotFound)
		if err != nil {
			return respondError(c, err)
		}
		if err := h.bannerService.Track(c.UserContext(), id, counter); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.DataResponse{Success: true})
	}
}

func (h *BannerHandler) TrackClick() fiber.Handler { return h.track(repository.BannerClicks) }

func (h *BannerHandler) TrackView() fiber.Handler { return h.track(repository.BannerViews) }
