package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
)

const (
	TrendSourceAI       = "ai"
	TrendSourceFallback = "fallback"
)

const defaultTrendPrompt = `List 6 emerging business trends that a small entrepreneur could act on this year.
Return ONLY a JSON array, no markdown or explanation, where each element has the string fields
"title", "description", "category", "growth" (for example "+35%") and "opportunity".`

// FallbackTrends is served whenever the model is unreachable or returns something unusable.
var FallbackTrends = []dto.Trend{
	{Title: "AI-Powered Local Services", Description: "Small service businesses adopting AI assistants for booking, quoting and customer support.", Category: "technology", Growth: "+45%", Opportunity: "Set-up and support packages for neighbourhood businesses"},
	{Title: "Plant-Based Convenience Food", Description: "Ready-to-eat plant-based meals moving from specialty shops into everyday retail.", Category: "food-beverage", Growth: "+28%", Opportunity: "Regional meal-prep brands and cafe supply"},
	{Title: "Remote Work Wellness", Description: "Employers paying for ergonomic, fitness and mental health services for distributed teams.", Category: "health-wellness", Growth: "+32%", Opportunity: "Subscription wellness programs sold to companies"},
	{Title: "Circular Fashion", Description: "Resale, repair and rental of clothing as shoppers look for cheaper and greener options.", Category: "retail", Growth: "+24%", Opportunity: "Curated resale shops and repair studios"},
	{Title: "Micro-Learning Platforms", Description: "Short, skills-focused courses delivered on mobile for working adults.", Category: "education", Growth: "+38%", Opportunity: "Niche vocational courses and corporate upskilling"},
	{Title: "Home Energy Retrofits", Description: "Homeowners investing in insulation, heat pumps and solar to cut energy bills.", Category: "services", Growth: "+30%", Opportunity: "Installation, auditing and financing services"},
}

// TrendService proxies market-trend and idea-coaching requests to the generative model.
type TrendService struct {
	provider ai.Provider
	ideas    repository.IdeaRepository
}

func NewTrendService(provider ai.Provider, ideas repository.IdeaRepository) *TrendService {
	return &TrendService{provider: provider, ideas: ideas}
}

// GenerateTrends never fails: any provider or parse error yields FallbackTrends.
func (s *TrendService) GenerateTrends(ctx context.Context, prompt string) ([]dto.Trend, string) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = defaultTrendPrompt
	}

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ai.ErrNotConfigured) {
			slog.Warn("trend generation failed, serving fallback", "error", err)
		}
		return fallbackTrends(), TrendSourceFallback
	}

	trends, err := parseTrends(text)
	if err != nil {
		slog.Warn("unusable trend response, serving fallback", "error", err)
		return fallbackTrends(), TrendSourceFallback
	}
	return trends, TrendSourceAI
}

func fallbackTrends() []dto.Trend {
	out := make([]dto.Trend, len(FallbackTrends))
	copy(out, FallbackTrends)
	return out
}

// parseTrends decodes the text between the first '[' and the last ']'.
func parseTrends(text string) ([]dto.Trend, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON array in response")
	}

	var trends []dto.Trend
	if err := json.Unmarshal([]byte(text[start:end+1]), &trends); err != nil {
		return nil, fmt.Errorf("failed to parse trends: %w", err)
	}
	if len(trends) == 0 {
		return nil, errors.New("empty trend list")
	}
	return trends, nil
}

// Chat asks the model about one idea, given the prior turns of the conversation.
func (s *TrendService) Chat(ctx context.Context, req *dto.ChatRequest) (string, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := validateStruct(req); err != nil {
		return "", err
	}
	ideaID, _ := uuid.Parse(req.IdeaID)

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrIdeaNotFound
		}
		return "", fmt.Errorf("failed to load idea: %w", err)
	}

	reply, err := s.provider.Generate(ctx, buildChatPrompt(idea, req.History, req.Message))
	if err != nil {
		slog.Error("idea chat failed", "idea_id", idea.ID.String(), "error", err)
		return "", ErrAIFailed
	}
	return reply, nil
}

func buildChatPrompt(idea *models.Idea, history []dto.ChatTurn, message string) string {
	var b strings.Builder
	b.WriteString("You are a business advisor helping an entrepreneur evaluate and develop the following business idea.\n\n")
	b.WriteString("Business idea:\n")
	fmt.Fprintf(&b, "Title: %s\n", idea.Title)
	fmt.Fprintf(&b, "Description: %s\n", idea.Description)
	fmt.Fprintf(&b, "Category: %s\n", idea.Category)
	fmt.Fprintf(&b, "Investment range: %s\n", idea.InvestmentRange)
	fmt.Fprintf(&b, "Time to start: %s\n", idea.TimeToStart)
	fmt.Fprintf(&b, "Target audience: %s\n", idea.TargetAudience)
	fmt.Fprintf(&b, "Key features: %s\n", strings.Join(idea.KeyFeatures, ", "))
	fmt.Fprintf(&b, "Business model: %s\n", idea.BusinessModel)
	fmt.Fprintf(&b, "Revenue streams: %s\n", strings.Join(idea.RevenueStreams, ", "))
	fmt.Fprintf(&b, "Competitive advantage: %s\n", idea.CompetitiveAdvantage)
	fmt.Fprintf(&b, "Challenges: %s\n", idea.Challenges)
	fmt.Fprintf(&b, "Market size: %s\n", idea.MarketSize)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(idea.RequiredSkills, ", "))

	if len(history) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, turn := range history {
			speaker := "User"
			if strings.EqualFold(turn.Role, "assistant") || strings.EqualFold(turn.Role, "model") {
				speaker = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, strings.TrimSpace(turn.Content))
		}
	}

	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", message)
	return b.String()
}
