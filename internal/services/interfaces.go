package services

import (
	"time"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// UserServicer defines the contract for the credential store.
type UserServicer interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TokenPair is the response shape for a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthServicer defines the contract for registration, login, token refresh,
// and resolving the authenticated user.
type AuthServicer interface {
	Register(email, username, password string) (*models.User, error)
	Login(email, password string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	CurrentUser(userID uint) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description, icon, color string) (*models.Category, error)
	ListCategories(includeInactive bool) ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
// All set fields are combined with AND.
type ExpenseFilter struct {
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *float64
	MaxAmount  *float64
}

// ExpensePatch holds the optional fields of a partial expense update. A nil
// field is left unchanged; only the fields listed here can be updated.
type ExpensePatch struct {
	Amount      *float64
	CategoryID  *uint
	Description *string
	Date        *time.Time
	Notes       *string
}

// ExpenseServicer defines the contract for expense-related business logic.
// Every operation is scoped to the owning user.
type ExpenseServicer interface {
	CreateExpense(userID uint, amount float64, categoryID uint, description string, date time.Time, notes string) (*models.Expense, error)
	ListExpenses(userID uint, params pagination.ListParams, filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, patch ExpensePatch) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}
