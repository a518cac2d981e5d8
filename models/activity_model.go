package models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Image       string    `gorm:"size:500" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	BasePrice   float64   `gorm:"type:numeric(10,2);default:0" json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
