package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a promotional slot shown on the landing page.
type Banner struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string    `gorm:"size:50;not null" json:"title"`
	Description     string    `gorm:"size:200;not null" json:"description"`
	ButtonText      string    `gorm:"size:30;not null" json:"buttonText"`
	RedirectURL     string    `gorm:"type:text;not null" json:"redirectUrl"`
	BackgroundImage string    `gorm:"type:text" json:"backgroundImage"`
	IsActive        bool      `gorm:"not null;index" json:"isActive"`
	Order           int       `gorm:"column:display_order;default:0" json:"order"`
	Clicks          int       `gorm:"default:0" json:"clicks"`
	Views           int       `gorm:"default:0" json:"views"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
