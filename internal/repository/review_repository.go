package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListApprovedByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).
		Where("idea_id = ? AND status = ?", ideaID, models.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsForIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return affected(r.db.WithContext(ctx).Model(review).
		Select("comment", "rating", "status", "updated_at").
		Updates(review))
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewHelpfulVote{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&models.Review{}))
	})
}

// ToggleHelpful locks the review row so the vote set and helpful_count change together.
func (r *reviewRepository) ToggleHelpful(ctx context.Context, reviewID, userID uuid.UUID) (int, bool, error) {
	var (
		count int
		voted bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&review, "id = ?", reviewID).Error; err != nil {
			return translate(err)
		}

		res := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).Delete(&models.ReviewHelpfulVote{})
		if res.Error != nil {
			return res.Error
		}

		expr := gorm.Expr("GREATEST(helpful_count - 1, 0)")
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.ReviewHelpfulVote{ID: uuid.New(), ReviewID: reviewID, UserID: userID}).Error; err != nil {
				return translate(err)
			}
			voted = true
			expr = gorm.Expr("helpful_count + 1")
		}

		if err := tx.Model(&models.Review{}).Where("id = ?", reviewID).UpdateColumn("helpful_count", expr).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).Where("id = ?", reviewID).Select("helpful_count").Scan(&count).Error
	})
	return count, voted, err
}
