package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h fiber.Handler) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &services.ValidationError{Field: "title", Message: "title is required"}, 400, "title is required"},
		{"duplicate email", services.ErrEmailTaken, 400, "User already exists with this email"},
		{"wrapped not found", fmt.Errorf("loading: %w", services.ErrIdeaNotFound), 404, "Idea not found"},
		{"admin only", services.ErrAdminOnly, 403, "Access denied. Admin privileges required."},
		{"uploads disabled", services.ErrUploadsDisabled, 503, "Image uploads are not configured"},
		{"unclassified", errors.New("connection reset by peer"), 500, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, func(c *fiber.Ctx) error { return respondError(c, tt.err) })
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorHandlerHidesServerErrors(t *testing.T) {
	status, body := serve(t, func(c *fiber.Ctx) error { return errors.New("pq: password authentication failed") })
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", body.Message)

	status, body = serve(t, func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "userId must be a valid id") })
	assert.Equal(t, 400, status)
	assert.Equal(t, "userId must be a valid id", body.Message)
}
