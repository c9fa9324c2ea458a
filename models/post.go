package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a published or draft blog post
type Post struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Tags      TagList   `json:"tags" db:"tags" gorm:"type:text;not null;default:'[]'"`
	CoverURL  *string   `json:"coverUrl,omitempty" db:"cover_url" gorm:"type:text"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	Views     int64     `json:"views" db:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}
