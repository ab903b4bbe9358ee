package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewStatusApproved = "approved"
	ReviewStatusPending  = "pending"
	ReviewStatusRejected = "rejected"
)

// Review is a user's comment on an idea, optionally rated 1-5.
type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IdeaID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_idea_user" json:"ideaId"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_idea_user;index" json:"userId"`
	UserName     string    `gorm:"size:100" json:"userName"`
	UserEmail    string    `gorm:"size:255" json:"userEmail"`
	Rating       *int      `json:"rating"`
	Comment      string    `gorm:"size:1000;not null" json:"comment"`
	Status       string    `gorm:"size:20;not null;default:'approved';index" json:"status"`
	HelpfulCount int       `gorm:"default:0" json:"helpfulCount"`
	// HeldReason is the moderation reason when Status is pending; never stored.
	HeldReason   string    `gorm:"-" json:"-"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReviewHelpfulVote records that a user marked a review as helpful.
type ReviewHelpfulVote struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_votes_review_user" json:"reviewId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_votes_review_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
