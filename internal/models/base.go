package models

import "time"

// Base contains common columns for all tables. There is no deleted-at
// column: expenses are hard-deleted, categories deactivate via IsActive,
// and users are never removed.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
