// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. PasswordHash never leaves the
// process; Blogs carries the records the user owns.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"unique;not null" json:"username"`
	Name         string         `gorm:"not null" json:"name"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Blogs        []Blog         `gorm:"foreignKey:UserID" json:"blogs,omitempty"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
