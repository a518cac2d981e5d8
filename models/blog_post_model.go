package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Slug       string    `gorm:"size:255;not null;unique" json:"slug"`
	CoverImage string    `gorm:"size:500" json:"cover_image"`
	Excerpt    string    `gorm:"size:500" json:"excerpt"`
	Body       string    `gorm:"type:text" json:"body"`
	AuthorID   uuid.UUID `gorm:"not null" json:"author_id"`
	Published  bool      `gorm:"default:false" json:"published"`

	Author User `gorm:"foreignkey:AuthorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
