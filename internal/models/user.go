// Package models contains the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Users are referenced by posts and
// user-authored comments but never own them transitively; deleting a user
// does not cascade into content.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Identity is the resolved authentication of the current request: the id and
// display name of the caller. A nil *Identity means the request is anonymous.
type Identity struct {
	ID   uint
	Name string
}
