package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	IdeaStatusDraft     = "draft"
	IdeaStatusPublished = "published"
	IdeaStatusArchived  = "archived"

	OriginAdmin     = "admin"
	OriginCommunity = "community"

	// Owner identity stamped on admin-curated ideas in place of a real user.
	AdminOwnerEmail = "admin@ideahub.app"
	AdminOwnerName  = "IdeaHub Admin"
)

// ContactInfo is stored inline on the ideas table with a contact_ prefix.
type ContactInfo struct {
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
}

// Idea is a business idea listing, either community-submitted or admin-curated.
type Idea struct {
	ID                   uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title                string                      `gorm:"size:100;not null" json:"title"`
	Description          string                      `gorm:"type:text;not null" json:"description"`
	Category             string                      `gorm:"size:50;not null;index" json:"category"`
	InvestmentRange      string                      `gorm:"size:30" json:"investmentRange"`
	TimeToStart          string                      `gorm:"size:30" json:"timeToStart"`
	TargetAudience       string                      `gorm:"size:500" json:"targetAudience"`
	KeyFeatures          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"keyFeatures"`
	BusinessModel        string                      `gorm:"size:30" json:"businessModel"`
	RevenueStreams       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"revenueStreams"`
	CompetitiveAdvantage string                      `gorm:"type:text" json:"competitiveAdvantage"`
	Challenges           string                      `gorm:"type:text" json:"challenges"`
	MarketSize           string                      `gorm:"size:30" json:"marketSize"`
	RequiredSkills       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requiredSkills"`
	ContactInfo          ContactInfo                 `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`
	ImageURL             string                      `gorm:"type:text" json:"imageUrl"`
	Status               string                      `gorm:"size:20;not null;default:'draft';index" json:"status"`
	UserID               uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	UserEmail            string                      `gorm:"size:255" json:"userEmail"`
	UserName             string                      `gorm:"size:100" json:"userName"`
	Views                int                         `gorm:"default:0" json:"views"`
	Likes                int                         `gorm:"default:0" json:"likes"`
	Tags                 datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsAdminIdea          bool                        `gorm:"not null;default:false;index" json:"isAdminIdea"`
	Origin               string                      `gorm:"size:20;not null;default:'community'" json:"origin"`
	IsFeatured           bool                        `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt            time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

// IdeaSave is one member of an idea's saved-by set.
type IdeaSave struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IdeaID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idea_saves_idea_user" json:"ideaId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idea_saves_idea_user;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

var IdeaStatuses = map[string]bool{
	IdeaStatusDraft: true, IdeaStatusPublished: true, IdeaStatusArchived: true,
}

var IdeaCategories = map[string]bool{
	"technology": true, "food-beverage": true, "retail": true, "services": true,
	"health-wellness": true, "education": true, "finance": true, "real-estate": true,
	"manufacturing": true, "agriculture": true, "entertainment": true, "other": true,
}

var InvestmentRanges = map[string]bool{
	"under-10k": true, "10k-50k": true, "50k-100k": true, "100k-500k": true, "500k-plus": true,
}

var TimesToStart = map[string]bool{
	"immediate": true, "1-3-months": true, "3-6-months": true, "6-12-months": true, "over-1-year": true,
}

var BusinessModels = map[string]bool{
	"b2b": true, "b2c": true, "b2b2c": true, "marketplace": true,
	"subscription": true, "freemium": true, "franchise": true, "other": true,
}

var MarketSizes = map[string]bool{
	"local": true, "regional": true, "national": true, "global": true,
}
