package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

var (
	profileColumns = []string{
		"name", "email", "bio", "location", "avatar", "phone", "age",
		"gender", "occupation", "website", "updated_at",
	}
	statsColumns = []string{"credits", "saved_ideas", "purchased_ideas", "completion_percentage", "updated_at"}
)

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.update(ctx, user, profileColumns)
}

func (r *userRepository) UpdateStats(ctx context.Context, user *models.User) error {
	return r.update(ctx, user, statsColumns)
}

func (r *userRepository) update(ctx context.Context, user *models.User, columns []string) error {
	return affected(r.db.WithContext(ctx).Model(user).Select(columns).Updates(user))
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return affected(r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).UpdateColumn("last_login", at))
}

func (r *userRepository) SetRole(ctx context.Context, email, role string) error {
	return affected(r.db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Update("role", role))
}
