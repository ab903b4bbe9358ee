package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("AI provider not configured")

// Provider turns a prompt into generated text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
