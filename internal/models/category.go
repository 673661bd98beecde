package models

// Category is a shared reference entity for organizing expenses. Categories
// are never hard-deleted; IsActive=false retires one without invalidating
// the expenses that already reference it.
type Category struct {
	Base
	Name        string `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	Color       string `gorm:"size:7" json:"color"`
	IsActive    bool   `gorm:"default:true;not null" json:"is_active"`
}
