package repository

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	return translate(r.db.WithContext(ctx).Create(banner).Error)
}

func (r *bannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &banner, nil
}

func (r *bannerRepository) List(ctx context.Context, active *bool) ([]models.Banner, error) {
	banners := make([]models.Banner, 0)
	q := r.db.WithContext(ctx).Order("display_order ASC, created_at DESC")
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}
	if err := q.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// bannerColumns leave the click and view counters to IncrementCounter.
var bannerColumns = []string{
	"title", "description", "button_text", "redirect_url", "background_image",
	"is_active", "display_order", "updated_at",
}

func (r *bannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	return affected(r.db.WithContext(ctx).Model(banner).Select(bannerColumns).Updates(banner))
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Banner{}))
}

func (r *bannerRepository) IncrementCounter(ctx context.Context, id uuid.UUID, counter BannerCounter) error {
	switch counter {
	case BannerClicks, BannerViews:
	default:
		return fmt.Errorf("unknown banner counter %q", counter)
	}
	col := string(counter)
	return affected(r.db.WithContext(ctx).Model(&models.Banner{}).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + 1")))
}
