package dto

import "github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"

type CreateReviewRequest struct {
	IdeaID  string `json:"ideaId" validate:"required,uuid"`
	Comment string `json:"comment" validate:"required,max=1000"`
	Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type UpdateReviewRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
	Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type HelpfulRequest struct {
	ReviewID string `json:"reviewId" validate:"required,uuid"`
}

type HelpfulResponse struct {
	HelpfulCount int  `json:"helpfulCount"`
	Voted        bool `json:"voted"`
}

type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
	RatedReviews  int     `json:"ratedReviews"`
}

type ReviewListResponse struct {
	Success bool            `json:"success"`
	Data    []models.Review `json:"data"`
	Summary ReviewSummary   `json:"summary"`
}
