package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a reader comment attached to a post. Its lifetime is
// bounded by the owning post's.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;index:idx_comment_post_id"`
	Author    string    `json:"author" db:"author" gorm:"type:text;not null"`
	Email     string    `json:"email,omitempty" db:"email" gorm:"type:text;not null;default:''"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Approved  bool      `json:"approved" db:"approved" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}
