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

type BannerService struct {
	banners repository.BannerRepository
}

func NewBannerService(banners repository.BannerRepository) *BannerService {
	return &BannerService{banners: banners}
}

func (s *BannerService) List(ctx context.Context, active *bool) ([]models.Banner, error) {
	banners, err := s.banners.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

func (s *BannerService) Get(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	banner, err := s.banners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to load banner: %w", err)
	}
	return banner, nil
}

func prepareBanner(req *dto.BannerRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.ButtonText = strings.TrimSpace(req.ButtonText)
	req.RedirectURL = strings.TrimSpace(req.RedirectURL)
	req.BackgroundImage = strings.TrimSpace(req.BackgroundImage)
	return validateStruct(req)
}

func (s *BannerService) Create(ctx context.Context, req *dto.BannerRequest) (*models.Banner, error) {
	if err := prepareBanner(req); err != nil {
		return nil, err
	}

	banner := models.Banner{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		ButtonText:      req.ButtonText,
		RedirectURL:     req.RedirectURL,
		BackgroundImage: req.BackgroundImage,
		IsActive:        true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}

	if err := s.banners.Create(ctx, &banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return &banner, nil
}

func (s *BannerService) Update(ctx context.Context, id uuid.UUID, req *dto.BannerRequest) (*models.Banner, error) {
	banner, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := prepareBanner(req); err != nil {
		return nil, err
	}

	banner.Title = req.Title
	banner.Description = req.Description
	banner.ButtonText = req.ButtonText
	banner.RedirectURL = req.RedirectURL
	banner.BackgroundImage = req.BackgroundImage
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}

	if err := s.banners.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return banner, nil
}

func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBannerNotFound
		}
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	return nil
}

// Track counts a click or a view on a banner.
func (s *BannerService) Track(ctx context.Context, id uuid.UUID, counter repository.BannerCounter) error {
	if err := s.banners.IncrementCounter(ctx, id, counter); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBannerNotFound
		}
		return fmt.Errorf("failed to track banner %s: %w", counter, err)
	}
	return nil
}
