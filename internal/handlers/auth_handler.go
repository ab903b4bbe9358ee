package handlers

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	data, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true, Message: "User created successfully", Data: data,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	data, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DataResponse{Success: true, Message: "Login successful", Data: data})
}

// Logout is stateless; the client discards its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.DataResponse{Success: true, Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(dto.DataResponse{Success: true, Data: fiber.Map{"user": dto.NewUserResponse(user)}})
}
