// Package seed populates the database with the default category set.
package seed

import (
	"gorm.io/gorm"

	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// DefaultCategories is the category set installed on a fresh database.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Food & Dining", Description: "Groceries, restaurants, and food delivery", Icon: "restaurant", Color: "#FF5733", IsActive: true},
		{Name: "Transportation", Description: "Fuel, public transport, taxi, and vehicle maintenance", Icon: "directions_car", Color: "#3498DB", IsActive: true},
		{Name: "Shopping", Description: "Clothing, electronics, and general shopping", Icon: "shopping_cart", Color: "#9B59B6", IsActive: true},
		{Name: "Entertainment", Description: "Movies, games, hobbies, and leisure activities", Icon: "movie", Color: "#E74C3C", IsActive: true},
		{Name: "Bills & Utilities", Description: "Electricity, water, internet, and phone bills", Icon: "receipt", Color: "#F39C12", IsActive: true},
		{Name: "Healthcare", Description: "Medical expenses, pharmacy, and health insurance", Icon: "local_hospital", Color: "#1ABC9C", IsActive: true},
		{Name: "Education", Description: "Courses, books, and educational materials", Icon: "school", Color: "#34495E", IsActive: true},
		{Name: "Travel", Description: "Flights, hotels, and vacation expenses", Icon: "flight", Color: "#16A085", IsActive: true},
		{Name: "Personal Care", Description: "Haircuts, cosmetics, and personal items", Icon: "spa", Color: "#E91E63", IsActive: true},
		{Name: "Other", Description: "Miscellaneous expenses", Icon: "category", Color: "#95A5A6", IsActive: true},
	}
}

// Run inserts the default categories. It is idempotent: when any categories
// already exist the database is left untouched.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Get().Infof("Database already has %d categories, skipping seed", count)
		return nil
	}

	categories := DefaultCategories()
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	logger.Get().Infof("Seeded %d default categories", len(categories))
	return nil
}
