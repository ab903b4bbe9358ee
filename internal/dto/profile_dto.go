package dto

import "github.com/google/uuid"

// ProfileResponse is the fixed profile projection; unset optionals come back as "" or 0.
type ProfileResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Bio        string       `json:"bio"`
	Location   string       `json:"location"`
	Avatar     string       `json:"avatar"`
	Phone      string       `json:"phone"`
	Age        int          `json:"age"`
	Gender     string       `json:"gender"`
	Occupation string       `json:"occupation"`
	Website    string       `json:"website"`
	Stats      ProfileStats `json:"stats"`
}

type ProfileStats struct {
	Credits              int `json:"credits"`
	SavedIdeas           int `json:"savedIdeas"`
	PurchasedIdeas       int `json:"purchasedIdeas"`
	CompletionPercentage int `json:"completionPercentage"`
}

type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Bio        string `json:"bio" validate:"omitempty,max=500"`
	Location   string `json:"location" validate:"omitempty,max=100"`
	Avatar     string `json:"avatar" validate:"omitempty,max=2048"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Age        int    `json:"age" validate:"omitempty,gte=13,lte=120"`
	Gender     string `json:"gender" validate:"omitempty,max=30"`
	Occupation string `json:"occupation" validate:"omitempty,max=100"`
	Website    string `json:"website" validate:"omitempty,max=255"`
}

// UpdateStatsRequest lists the only counters a client may patch. Nil means "leave as is".
type UpdateStatsRequest struct {
	Credits              *int `json:"credits"`
	SavedIdeas           *int `json:"savedIdeas"`
	PurchasedIdeas       *int `json:"purchasedIdeas"`
	CompletionPercentage *int `json:"completionPercentage"`
}

func (r *UpdateStatsRequest) Empty() bool {
	return r.Credits == nil && r.SavedIdeas == nil && r.PurchasedIdeas == nil && r.CompletionPercentage == nil
}
