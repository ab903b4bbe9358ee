package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository/repotest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrends(t *testing.T) {
	repo, _ := repotest.New()
	ctx := context.Background()

	t.Run("parses array embedded in prose", func(t *testing.T) {
		p := new(mockProvider)
		p.On("Generate", mock.Anything, "custom prompt").
			Return("Sure! ```json\n[{\"title\":\"Drones\",\"growth\":\"+10%\"}]\n``` hope it helps", nil)

		trends, source := NewTrendService(p, repo.Ideas).GenerateTrends(ctx, " custom prompt ")
		assert.Equal(t, TrendSourceAI, source)
		require.Len(t, trends, 1)
		assert.Equal(t, "Drones", trends[0].Title)
		p.AssertExpectations(t)
	})

	t.Run("default prompt when empty", func(t *testing.T) {
		p := new(mockProvider)
		p.On("Generate", mock.Anything, defaultTrendPrompt).Return(`[{"title":"X"}]`, nil)

		_, source := NewTrendService(p, repo.Ideas).GenerateTrends(ctx, "")
		assert.Equal(t, TrendSourceAI, source)
		p.AssertExpectations(t)
	})

	fallbacks := map[string]struct {
		text string
		err  error
	}{
		"provider error":   {"", errors.New("boom")},
		"not configured":   {"", ai.ErrNotConfigured},
		"no array":         {"I cannot help with that", nil},
		"empty array":      {"[]", nil},
		"malformed array":  {"[{\"title\": }]", nil},
		"brackets swapped": {"] oops [", nil},
	}
	for name, tc := range fallbacks {
		t.Run(name, func(t *testing.T) {
			p := new(mockProvider)
			p.On("Generate", mock.Anything, mock.Anything).Return(tc.text, tc.err)

			trends, source := NewTrendService(p, repo.Ideas).GenerateTrends(ctx, "p")
			assert.Equal(t, TrendSourceFallback, source)
			assert.Equal(t, FallbackTrends, trends)
		})
	}
}

func TestChat(t *testing.T) {
	repo, _ := repotest.New()
	ctx := context.Background()
	idea := &models.Idea{ID: uuid.New(), Title: "Coffee Cart", Category: "food-beverage", KeyFeatures: []string{"Espresso"}}
	require.NoError(t, repo.Ideas.Create(ctx, idea))

	t.Run("builds context and transcript", func(t *testing.T) {
		p := new(mockProvider)
		p.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Title: Coffee Cart") &&
				strings.Contains(prompt, "Key features: Espresso") &&
				strings.Contains(prompt, "User: How much?\nAssistant: About 20k.\n") &&
				strings.HasSuffix(prompt, "User: And staffing?\nAssistant:")
		})).Return("Two baristas.", nil)

		reply, err := NewTrendService(p, repo.Ideas).Chat(ctx, &dto.ChatRequest{
			IdeaID:  idea.ID.String(),
			Message: "And staffing?",
			History: []dto.ChatTurn{{Role: "user", Content: "How much?"}, {Role: "assistant", Content: "About 20k."}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Two baristas.", reply)
		p.AssertExpectations(t)
	})

	t.Run("provider failure", func(t *testing.T) {
		p := new(mockProvider)
		p.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

		_, err := NewTrendService(p, repo.Ideas).Chat(ctx, &dto.ChatRequest{IdeaID: idea.ID.String(), Message: "hi"})
		assert.ErrorIs(t, err, ErrAIFailed)
	})

	t.Run("unknown idea", func(t *testing.T) {
		p := new(mockProvider)
		_, err := NewTrendService(p, repo.Ideas).Chat(ctx, &dto.ChatRequest{IdeaID: uuid.NewString(), Message: "hi"})
		assert.ErrorIs(t, err, ErrIdeaNotFound)
		p.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})
}
