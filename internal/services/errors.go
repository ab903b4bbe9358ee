package services

import "errors"

// Sentinel messages are returned to clients verbatim.
var (
	ErrEmailTaken         = errors.New("User already exists with this email")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailInUse         = errors.New("Email is already in use")
	ErrNoStatsFields      = errors.New("No valid stats fields provided")

	ErrIdeaNotFound   = errors.New("Idea not found")
	ErrAdminOnly      = errors.New("Access denied. Admin privileges required.")
	ErrBannerNotFound = errors.New("Banner not found")

	ErrReviewNotFound  = errors.New("Review not found")
	ErrReviewNotOwned  = errors.New("Review not found or unauthorized")
	ErrAlreadyReviewed = errors.New("You have already reviewed this idea")

	ErrUploadsDisabled = errors.New("Image uploads are not configured")
	ErrAIFailed        = errors.New("Failed to get AI response")
)

// ValidationError reports the first invalid field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
