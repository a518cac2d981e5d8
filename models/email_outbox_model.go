package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailOutbox is a durable queue row for a transactional email. Rows are
// inserted on the request path and delivered by the outbox cron job, so a
// slow or failing mail provider never blocks a booking response.
type EmailOutbox struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RecipientName string    `gorm:"size:255" json:"recipient_name"`
	Recipient     string    `gorm:"size:255;not null" json:"recipient"`
	Subject       string    `gorm:"size:500;not null" json:"subject"`
	HTMLBody      string    `gorm:"type:text;not null" json:"-"`

	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Attempts      int        `gorm:"default:0" json:"attempts"`
	LastError     *string    `gorm:"type:text" json:"last_error"`
	NextAttemptAt *time.Time `json:"next_attempt_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
