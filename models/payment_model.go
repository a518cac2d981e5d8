package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID *uuid.UUID `gorm:"unique" json:"booking_id"`

	Provider          string  `gorm:"size:50;not null" json:"provider"`
	ProviderSessionID *string `gorm:"size:255;unique" json:"provider_session_id"`
	ProviderOrderID   *string `gorm:"size:255;unique" json:"provider_order_id"`
	ProviderTxnID     *string `gorm:"size:255;unique" json:"provider_txn_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3" json:"currency"`
	Status   string  `gorm:"size:20;not null" json:"status"`

	FollowupSentAt *time.Time `json:"-"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
