package models

import (
	"time"

	"github.com/google/uuid"
)

type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Image       string    `gorm:"size:500" json:"image"`
	Description string    `gorm:"type:text" json:"description"`

	// Per-person unit price in major currency units.
	Price      float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency   string  `gorm:"size:3;default:'USD'" json:"currency"`
	Duration   string  `gorm:"size:50" json:"duration"`
	Difficulty string  `gorm:"size:20;not null;default:'moderate'" json:"difficulty"`
	Tags       string  `gorm:"size:500" json:"tags"`

	MaxAltitude *string `gorm:"size:50" json:"max_altitude"`
	BestSeason  *string `gorm:"size:100" json:"best_season"`
	Featured    bool    `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
