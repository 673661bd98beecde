package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// expenseService handles expense-related business logic. Every query is
// scoped to the owning user; a record owned by someone else is reported
// exactly like a missing one.
type expenseService struct {
	db         *gorm.DB
	categories CategoryServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, categories CategoryServicer) ExpenseServicer {
	return &expenseService{db: db, categories: categories}
}

// CreateExpense persists a new expense for a user. The category must exist
// and be active at write time.
func (s *expenseService) CreateExpense(userID uint, amount float64, categoryID uint, description string, date time.Time, notes string) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	category, err := s.categories.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.ErrInactiveCategory
	}

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
		Notes:       notes,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.Category = *category
	return expense, nil
}

// ListExpenses retrieves a filtered, paginated list of a user's expenses,
// most recent date first. Ties among equal dates are broken by ascending ID,
// which is insertion order.
func (s *expenseService) ListExpenses(userID uint, params pagination.ListParams, filter ExpenseFilter) ([]models.Expense, error) {
	params.Defaults()

	q := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	q = applyExpenseFilters(q, filter)

	var expenses []models.Expense
	if err := q.Scopes(pagination.Scope(params)).
		Order("date DESC, id ASC").
		Preload("Category").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// applyExpenseFilters chains the optional filter predicates; all supplied
// filters are conjunctive.
func applyExpenseFilters(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetExpenseByID retrieves an expense by ID for a specific user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).
		Preload("Category").
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies a sparse patch to an expense. Absent fields are left
// unchanged. The category is re-validated only when the patch supplies one.
func (s *expenseService) UpdateExpense(userID, expenseID uint, patch ExpensePatch) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		category, err := s.categories.GetCategoryByID(*patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.IsActive {
			return nil, apperrors.ErrInactiveCategory
		}
		expense.CategoryID = *patch.CategoryID
		expense.Category = *category
	}

	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		expense.Amount = *patch.Amount
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description cannot be empty")
		}
		expense.Description = *patch.Description
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.Notes != nil {
		expense.Notes = *patch.Notes
	}

	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense permanently removes a user's expense.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
