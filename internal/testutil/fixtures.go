package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a date-only UTC timestamp, matching how the handlers parse
// YYYY-MM-DD values.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates an active user with a hashed password and unique
// email and username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", n), fmt.Sprintf("user%d", n))
}

// CreateTestUserWithEmail creates a user with the given email and username.
// The password is always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateInactiveUser creates a user whose account has been deactivated.
func CreateInactiveUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate test user: %v", err)
	}
	user.IsActive = false
	return user
}

// CreateTestCategory creates an active category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("Test Category %d", nextID()),
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateInactiveCategory creates a category that has been deactivated.
func CreateInactiveCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Retired Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create inactive test category: %v", err)
	}
	if err := db.Model(category).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate test category: %v", err)
	}
	category.IsActive = false
	return category
}

// CreateTestExpense creates an expense with the given amount and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
