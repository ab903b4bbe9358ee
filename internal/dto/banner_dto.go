package dto

// BannerRequest is used for both create and update. The word limit is checked before the
// character limit so an over-long headline reports the word rule.
type BannerRequest struct {
	Title           string `json:"title" validate:"required,maxwords=10,max=50"`
	Description     string `json:"description" validate:"required,max=200"`
	ButtonText      string `json:"buttonText" validate:"required,max=30"`
	RedirectURL     string `json:"redirectUrl" validate:"required,max=2048"`
	BackgroundImage string `json:"backgroundImage" validate:"omitempty,max=2048"`
	IsActive        *bool  `json:"isActive"`
	Order           *int   `json:"order"`
}
