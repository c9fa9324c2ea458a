package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an administrator account. The password column holds a
// bcrypt hash and is never serialized.
type Admin struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;default:'admin'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}
