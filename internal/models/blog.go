package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog is a user-owned content record. UserID is set at creation and
// immutable afterwards; Likes may be changed by anyone.
type Blog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Author    string         `gorm:"not null" json:"author"`
	URL       string         `json:"url"`
	Likes     int            `gorm:"not null;default:0" json:"likes"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
