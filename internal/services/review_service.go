package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
)

type ReviewService struct {
	reviews    repository.ReviewRepository
	ideas      repository.IdeaRepository
	moderation *ModerationService
}

func NewReviewService(reviews repository.ReviewRepository, ideas repository.IdeaRepository, moderation *ModerationService) *ReviewService {
	return &ReviewService{reviews: reviews, ideas: ideas, moderation: moderation}
}

// List returns the approved reviews of an idea, newest first, and their rating summary.
func (s *ReviewService) List(ctx context.Context, ideaID uuid.UUID) ([]models.Review, dto.ReviewSummary, error) {
	reviews, err := s.reviews.ListApprovedByIdea(ctx, ideaID)
	if err != nil {
		return nil, dto.ReviewSummary{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, summarize(reviews), nil
}

func summarize(reviews []models.Review) dto.ReviewSummary {
	sum := dto.ReviewSummary{TotalReviews: len(reviews)}
	total := 0
	for _, r := range reviews {
		if r.Rating != nil {
			total += *r.Rating
			sum.RatedReviews++
		}
	}
	if sum.RatedReviews > 0 {
		sum.AverageRating = math.Round(float64(total)/float64(sum.RatedReviews)*10) / 10
	}
	return sum
}

// moderate sets the status the review should be stored with.
func (s *ReviewService) moderate(review *models.Review) {
	review.Status, review.HeldReason = models.ReviewStatusApproved, ""
	if s.moderation == nil {
		return
	}
	if ok, reason := s.moderation.FilterContent(review.Comment); !ok {
		slog.Info("review held for moderation", "review_id", review.ID.String(), "reason", reason)
		review.Status, review.HeldReason = models.ReviewStatusPending, reason
	}
}

// Notice is the message shown to the author of a held review, or "" when it was published.
func (s *ReviewService) Notice(review *models.Review) string {
	if review.Status != models.ReviewStatusPending || s.moderation == nil {
		return ""
	}
	return s.moderation.RejectionMessage(review.HeldReason) + " It will be visible after moderation."
}

func (s *ReviewService) Create(ctx context.Context, author *models.User, req *dto.CreateReviewRequest) (*models.Review, error) {
	req.IdeaID = strings.TrimSpace(req.IdeaID)
	req.Comment = strings.TrimSpace(req.Comment)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ideaID, _ := uuid.Parse(req.IdeaID)

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to load idea: %w", err)
	}

	exists, err := s.reviews.ExistsForIdeaAndUser(ctx, ideaID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := models.Review{
		ID:        uuid.New(),
		IdeaID:    ideaID,
		UserID:    author.ID,
		UserName:  author.Name,
		UserEmail: author.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	s.moderate(&review)

	if err := s.reviews.Create(ctx, &review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// owned loads a review only if it belongs to userID; missing and foreign reviews look the same.
func (s *ReviewService) owned(ctx context.Context, id, userID uuid.UUID) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotOwned
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	if review.UserID != userID {
		return nil, ErrReviewNotOwned
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, author *models.User, id uuid.UUID, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.owned(ctx, id, author.ID)
	if err != nil {
		return nil, err
	}
	req.Comment = strings.TrimSpace(req.Comment)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	review.Comment = req.Comment
	review.Rating = req.Rating
	s.moderate(review)

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, author *models.User, id uuid.UUID) error {
	if _, err := s.owned(ctx, id, author.ID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotOwned
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// ToggleHelpful flips the caller's helpful vote; applying it twice restores the original state.
func (s *ReviewService) ToggleHelpful(ctx context.Context, voter *models.User, req *dto.HelpfulRequest) (*dto.HelpfulResponse, error) {
	req.ReviewID = strings.TrimSpace(req.ReviewID)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reviewID, _ := uuid.Parse(req.ReviewID)

	count, voted, err := s.reviews.ToggleHelpful(ctx, reviewID, voter.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to toggle helpful vote: %w", err)
	}
	return &dto.HelpfulResponse{HelpfulCount: count, Voted: voted}, nil
}
