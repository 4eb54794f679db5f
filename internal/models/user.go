package models

import (
	"time"
)

// User is created on first successful Google sign-in and never deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoogleID  string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Picture   string    `gorm:"size:512" json:"picture,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Settings *UserSettings `gorm:"foreignKey:UserID" json:"-"`
}

// UserSettings is the one-to-one preference row. The unique index on UserID is
// what makes concurrent lazy creation safe: the loser of the race gets a
// duplicate-key error and re-reads the surviving row.
type UserSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Theme     string    `gorm:"size:50;default:'dark'" json:"theme"`
	Currency  string    `gorm:"size:10;default:'₹'" json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DefaultTheme    = "dark"
	DefaultCurrency = "₹"
)
