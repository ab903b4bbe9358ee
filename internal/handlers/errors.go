package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
)

var statusBySentinel = []struct {
	err    error
	status int
}{
	{services.ErrEmailTaken, fiber.StatusBadRequest},
	{services.ErrEmailInUse, fiber.StatusBadRequest},
	{services.ErrAlreadyReviewed, fiber.StatusBadRequest},
	{services.ErrNoStatsFields, fiber.StatusBadRequest},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{services.ErrAdminOnly, fiber.StatusForbidden},
	{services.ErrUserNotFound, fiber.StatusNotFound},
	{services.ErrIdeaNotFound, fiber.StatusNotFound},
	{services.ErrBannerNotFound, fiber.StatusNotFound},
	{services.ErrReviewNotFound, fiber.StatusNotFound},
	{services.ErrReviewNotOwned, fiber.StatusNotFound},
	{services.ErrUploadsDisabled, fiber.StatusServiceUnavailable},
	{services.ErrAIFailed, fiber.StatusBadGateway},
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// respondError maps a service error onto the error envelope. Anything unclassified is
// logged and reported as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return fail(c, fiber.StatusBadRequest, verr.Message)
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return fail(c, s.status, s.err.Error())
		}
	}

	slog.Error("request failed",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return fail(c, fiber.StatusInternalServerError, msgInternal)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

// pathID parses the :id route parameter; a malformed id is reported as notFound.
func pathID(c *fiber.Ctx, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// ErrorHandler is the Fiber-level fallback for errors returned by middleware or unmatched
// routes. 5xx details are never exposed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := msgInternal
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = msgInternal
	}

	return fail(c, code, message)
}
