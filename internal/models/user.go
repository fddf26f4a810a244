// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Email is always persisted in
// lowercase canonical form; PasswordDigest and RememberDigest hold bcrypt
// hashes and never leave the API surface.
type User struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Name           string      `gorm:"size:50;not null" json:"name"`
	Email          string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordDigest string      `gorm:"not null" json:"-"`
	RememberDigest string      `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Microposts     []Micropost `gorm:"foreignKey:UserID" json:"microposts,omitempty"`
}
