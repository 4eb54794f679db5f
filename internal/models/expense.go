package models

import (
	"time"
)

// Expense belongs to exactly one user. Deletion is physical; there is no
// soft-delete column on purpose.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
