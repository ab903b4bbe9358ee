package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage stores the multipart field "image" and returns its public URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	if !h.uploadService.Enabled() {
		return respondError(c, services.ErrUploadsDisabled)
	}

	header, err := c.FormFile("image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "image is required")
	}
	file, err := header.Open()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "image could not be read")
	}
	defer file.Close()

	resp, err := h.uploadService.UploadImage(
		c.UserContext(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true, Message: "Image uploaded successfully", Data: resp,
	})
}
