package services

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, contentType, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func validIdeaFields() dto.IdeaFields {
	return dto.IdeaFields{
		Title:                "Mobile Coffee Cart",
		Description:          "Specialty coffee served from a cart at office parks.",
		Category:             "food-beverage",
		InvestmentRange:      "10k-50k",
		TimeToStart:          "1-3-months",
		TargetAudience:       "Office workers",
		KeyFeatures:          []string{"Espresso", "Pastries"},
		BusinessModel:        "b2c",
		RevenueStreams:       []string{"Drinks"},
		CompetitiveAdvantage: "Comes to the customer",
		Challenges:           "Weather",
		MarketSize:           "local",
		RequiredSkills:       []string{"Barista"},
		ContactInfo:          dto.ContactInfoInput{Email: "owner@example.com"},
		Tags:                 []string{"coffee", "mobile"},
	}
}

func testUser(name, email string) *models.User {
	return &models.User{Name: name, Email: email, Role: models.RoleUser}
}
