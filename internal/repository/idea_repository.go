package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ideaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// scope turns the filter into WHERE clauses shared by the count and page queries.
func (f IdeaFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.Title != "" {
		db = db.Where("title = ?", f.Title)
	}
	if f.Search != "" {
		p := containsPattern(f.Search)
		db = db.Where("(title ILIKE ? OR description ILIKE ? OR category ILIKE ?)", p, p, p)
	}
	if f.Tag != "" {
		db = db.Where("jsonb_typeof(tags) = 'array' AND EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS t(tag) WHERE t.tag ILIKE ?)",
			containsPattern(f.Tag))
	}
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.AdminOnly {
		db = db.Where("is_admin_idea = ?", true)
	}
	if f.ExcludeAdmin {
		db = db.Where("is_admin_idea = ? AND origin <> ?", false, models.OriginAdmin)
	}
	if f.Featured != nil {
		db = db.Where("is_featured = ?", *f.Featured)
	}
	return db
}

func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	return translate(r.db.WithContext(ctx).Create(idea).Error)
}

func (r *ideaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	if err := r.db.WithContext(ctx).First(&idea, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &idea, nil
}

func (r *ideaRepository) List(ctx context.Context, filter IdeaFilter) ([]models.Idea, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Idea{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ideas := make([]models.Idea, 0)
	q := r.db.WithContext(ctx).Scopes(filter.scope).Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := q.Find(&ideas).Error; err != nil {
		return nil, 0, err
	}
	return ideas, total, nil
}

// ideaColumns are the fields an edit may write. Counters, ownership, origin and the featured
// flag have their own statements.
var ideaColumns = []string{
	"title", "description", "category", "investment_range", "time_to_start", "target_audience",
	"key_features", "business_model", "revenue_streams", "competitive_advantage", "challenges",
	"market_size", "required_skills", "contact_email", "contact_phone", "image_url", "status",
	"tags", "updated_at",
}

func (r *ideaRepository) Update(ctx context.Context, idea *models.Idea) error {
	return affected(r.db.WithContext(ctx).Model(idea).Select(ideaColumns).Updates(idea))
}

// Delete removes the idea with its saves, reviews and helpful votes, and gives every saver back
// one saved-ideas slot.
func (r *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		savers := tx.Model(&models.IdeaSave{}).Select("user_id").Where("idea_id = ?", id)
		if err := tx.Model(&models.User{}).
			Where("id IN (?)", savers).
			UpdateColumn("saved_ideas", gorm.Expr("GREATEST(saved_ideas - 1, 0)")).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&models.IdeaSave{}).Error; err != nil {
			return err
		}
		reviews := tx.Model(&models.Review{}).Select("id").Where("idea_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviews).Delete(&models.ReviewHelpfulVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&models.Idea{}))
	})
}

func (r *ideaRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Model(&models.Idea{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")))
}

func (r *ideaRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	return affected(r.db.WithContext(ctx).Model(&models.Idea{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_featured": featured}))
}

func (r *ideaRepository) ToggleSave(ctx context.Context, ideaID, userID uuid.UUID) (bool, error) {
	var saved bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var idea models.Idea
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&idea, "id = ?", ideaID).Error; err != nil {
			return translate(err)
		}

		res := tx.Where("idea_id = ? AND user_id = ?", ideaID, userID).Delete(&models.IdeaSave{})
		if res.Error != nil {
			return res.Error
		}

		delta := gorm.Expr("GREATEST(saved_ideas - 1, 0)")
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.IdeaSave{ID: uuid.New(), IdeaID: ideaID, UserID: userID}).Error; err != nil {
				return translate(err)
			}
			saved = true
			delta = gorm.Expr("saved_ideas + 1")
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).UpdateColumn("saved_ideas", delta).Error
	})
	return saved, err
}
