package models

import (
	"time"

	"github.com/google/uuid"
)

type HeroSlide struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Subtitle string    `gorm:"size:500" json:"subtitle"`
	Image    string    `gorm:"size:500;not null" json:"image"`
	CTALabel string    `gorm:"size:100" json:"cta_label"`
	CTALink  string    `gorm:"size:255" json:"cta_link"`
	Position int       `gorm:"default:0" json:"position"`
	Active   bool      `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
