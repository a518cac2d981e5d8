package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a scheduled departure of a destination shown on the catalog.
type Trip struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DestinationID uuid.UUID `gorm:"not null" json:"destination_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	StartDate     string    `gorm:"size:100;not null" json:"start_date"`
	Seats         int       `gorm:"default:0" json:"seats"`
	Status        string    `gorm:"size:20;not null;default:'open'" json:"status"`

	Destination Destination `gorm:"foreignkey:DestinationID" json:"destination,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
