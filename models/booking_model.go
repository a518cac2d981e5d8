package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"not null" json:"user_id"`
	DestinationID uuid.UUID `gorm:"not null" json:"destination_id"`
	Reference     string    `gorm:"size:20;not null;unique" json:"reference"`

	TravelerName  string `gorm:"size:255;not null" json:"traveler_name"`
	TravelerEmail string `gorm:"size:255;not null" json:"traveler_email"`
	TravelerPhone string `gorm:"size:30;not null" json:"traveler_phone"`

	NumberOfPeople int     `gorm:"not null" json:"number_of_people"`
	TrekDate       string  `gorm:"size:100;not null" json:"trek_date"`
	TotalAmount    float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Currency       string  `gorm:"size:3" json:"currency"`

	SpecialRequests *string `gorm:"type:text" json:"special_requests"`

	// Trip lifecycle, admin-mutated: pending, confirmed, completed, cancelled.
	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	// Payment lifecycle, webhook- or admin-mutated: pending, paid, refunded.
	PaymentStatus string `gorm:"size:20;not null;default:'pending'" json:"payment_status"`

	VoucherURL *string `gorm:"size:500" json:"voucher_url"`

	User        User        `gorm:"foreignkey:UserID" json:"-"`
	Destination Destination `gorm:"foreignkey:DestinationID" json:"destination,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
