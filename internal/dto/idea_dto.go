package dto

import "github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"

type ContactInfoInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// IdeaFields are the business fields shared by create and update. Field order is the
// order in which missing fields are reported.
type IdeaFields struct {
	Title                string           `json:"title" validate:"required,max=100"`
	Description          string           `json:"description" validate:"required,max=2000"`
	Category             string           `json:"category" validate:"required,idea_category"`
	InvestmentRange      string           `json:"investmentRange" validate:"required,investment_range"`
	TimeToStart          string           `json:"timeToStart" validate:"required,time_to_start"`
	TargetAudience       string           `json:"targetAudience" validate:"required,max=500"`
	KeyFeatures          []string         `json:"keyFeatures" validate:"required,min=1,max=5,dive,required,max=200"`
	BusinessModel        string           `json:"businessModel" validate:"required,business_model"`
	RevenueStreams       []string         `json:"revenueStreams" validate:"required,min=1,max=3,dive,required,max=200"`
	CompetitiveAdvantage string           `json:"competitiveAdvantage" validate:"required,max=1000"`
	Challenges           string           `json:"challenges" validate:"required,max=1000"`
	MarketSize           string           `json:"marketSize" validate:"required,market_size"`
	RequiredSkills       []string         `json:"requiredSkills" validate:"required,min=1,max=5,dive,required,max=100"`
	ContactInfo          ContactInfoInput `json:"contactInfo"`
	ImageURL             string           `json:"imageUrl" validate:"omitempty,max=2048"`
	Tags                 []string         `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// IdeaOwnerInput identifies the submitting user on the community path.
type IdeaOwnerInput struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	UserName  string `json:"userName" validate:"required,max=100"`
}

type CreateIdeaRequest struct {
	IdeaFields
	IdeaOwnerInput
	IsAdmin    bool `json:"isAdmin"`
	IsFeatured bool `json:"isFeatured"`
}

type UpdateIdeaRequest struct {
	IdeaFields
	Status string `json:"status"`
}

type SetFeaturedRequest struct {
	IdeaID   string `json:"ideaId" validate:"required,uuid"`
	Featured *bool  `json:"featured"`
}

type IdeaListResponse struct {
	Success    bool          `json:"success"`
	Data       []models.Idea `json:"data"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

type SaveIdeaResponse struct {
	Saved bool `json:"saved"`
}
