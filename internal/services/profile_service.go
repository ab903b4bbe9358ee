package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
)

type ProfileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func toProfile(u *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Bio:        u.Bio,
		Location:   u.Location,
		Avatar:     u.Avatar,
		Phone:      u.Phone,
		Age:        u.Age,
		Gender:     u.Gender,
		Occupation: u.Occupation,
		Website:    u.Website,
		Stats:      toStats(u),
	}
}

func toStats(u *models.User) dto.ProfileStats {
	return dto.ProfileStats{
		Credits:              u.Credits,
		SavedIdeas:           u.SavedIdeas,
		PurchasedIdeas:       u.PurchasedIdeas,
		CompletionPercentage: u.CompletionPercentage,
	}
}

func (s *ProfileService) load(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if other, err := s.users.GetByEmail(ctx, req.Email); err == nil && other.ID != user.ID {
		return nil, ErrEmailInUse
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Bio = strings.TrimSpace(req.Bio)
	user.Location = strings.TrimSpace(req.Location)
	user.Avatar = strings.TrimSpace(req.Avatar)
	user.Phone = strings.TrimSpace(req.Phone)
	user.Age = req.Age
	user.Gender = strings.TrimSpace(req.Gender)
	user.Occupation = strings.TrimSpace(req.Occupation)
	user.Website = strings.TrimSpace(req.Website)

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toProfile(user), nil
}

// UpdateStats patches the usage counters: completion is clamped to [0,100], the rest floored at 0.
func (s *ProfileService) UpdateStats(ctx context.Context, userID uuid.UUID, req *dto.UpdateStatsRequest) (*dto.ProfileStats, error) {
	if req.Empty() {
		return nil, ErrNoStatsFields
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	const unbounded = int(^uint(0) >> 1)
	if req.Credits != nil {
		user.Credits = clamp(*req.Credits, 0, unbounded)
	}
	if req.SavedIdeas != nil {
		user.SavedIdeas = clamp(*req.SavedIdeas, 0, unbounded)
	}
	if req.PurchasedIdeas != nil {
		user.PurchasedIdeas = clamp(*req.PurchasedIdeas, 0, unbounded)
	}
	if req.CompletionPercentage != nil {
		user.CompletionPercentage = clamp(*req.CompletionPercentage, 0, 100)
	}

	if err := s.users.UpdateStats(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	stats := toStats(user)
	return &stats, nil
}
