package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account plus its profile and usage counters.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Email    string    `gorm:"not null;size:255;uniqueIndex:idx_users_email" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;default:'user'" json:"role"`

	Bio        string `gorm:"size:500" json:"bio"`
	Location   string `gorm:"size:100" json:"location"`
	Avatar     string `gorm:"type:text" json:"avatar"`
	Phone      string `gorm:"size:30" json:"phone"`
	Age        int    `json:"age"`
	Gender     string `gorm:"size:30" json:"gender"`
	Occupation string `gorm:"size:100" json:"occupation"`
	Website    string `gorm:"size:255" json:"website"`

	Credits              int `gorm:"default:0" json:"credits"`
	SavedIdeas           int `gorm:"default:0" json:"savedIdeas"`
	PurchasedIdeas       int `gorm:"default:0" json:"purchasedIdeas"`
	CompletionPercentage int `gorm:"default:0" json:"completionPercentage"`

	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
