package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/google/uuid"
)

type SignupRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Age        int    `json:"age" validate:"omitempty,gte=13,lte=120"`
	Gender     string `json:"gender" validate:"omitempty,max=30"`
	Location   string `json:"location" validate:"omitempty,max=100"`
	Occupation string `json:"occupation" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserResponse is the public view of a user; it never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Avatar    string     `json:"avatar"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
