package models

import (
	"time"
)

// MaxMicropostLen bounds micropost content length.
const MaxMicropostLen = 140

// Micropost is a short text record authored by a user. Listings and feeds
// order microposts by created_at descending.
type Micropost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
