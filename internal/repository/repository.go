package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Update writes the profile fields; UpdateStats writes only the usage counters.
	Update(ctx context.Context, user *models.User) error
	UpdateStats(ctx context.Context, user *models.User) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetRole(ctx context.Context, email, role string) error
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	List(ctx context.Context, filter IdeaFilter) ([]models.Idea, int64, error)
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	// ToggleSave flips membership of userID in the idea's saved-by set and reports the new state.
	ToggleSave(ctx context.Context, ideaID, userID uuid.UUID) (bool, error)
}

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	List(ctx context.Context, active *bool) ([]models.Banner, error)
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementCounter(ctx context.Context, id uuid.UUID, counter BannerCounter) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListApprovedByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Review, error)
	ExistsForIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ToggleHelpful adds or removes userID's helpful vote and returns the resulting count.
	ToggleHelpful(ctx context.Context, reviewID, userID uuid.UUID) (count int, voted bool, err error)
}

type BannerCounter string

const (
	BannerClicks BannerCounter = "clicks"
	BannerViews  BannerCounter = "views"
)

// IdeaFilter narrows an idea listing. Zero values mean "no constraint"; Limit 0 returns every match.
type IdeaFilter struct {
	Status       string
	Category     string
	Search       string
	Title        string
	Tag          string
	UserID       *uuid.UUID
	AdminOnly    bool
	ExcludeAdmin bool
	Featured     *bool
	Offset       int
	Limit        int
}

// Repository groups the stores the services depend on.
type Repository struct {
	Users   UserRepository
	Ideas   IdeaRepository
	Banners BannerRepository
	Reviews ReviewRepository
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(db),
		Ideas:   NewIdeaRepository(db),
		Banners: NewBannerRepository(db),
		Reviews: NewReviewRepository(db),
	}
}
