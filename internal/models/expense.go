package models

import "time"

// Expense is a spending record owned by exactly one user. The category is
// referenced by ID; the association is only loaded explicitly at the query
// boundary, never kept as a live back-reference.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Notes       string    `json:"notes"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
