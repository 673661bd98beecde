package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// categoryService handles category-related business logic. Categories are a
// shared reference table; they are not owned by individual users.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new active category. Name uniqueness is an exact,
// case-sensitive match.
func (s *categoryService) CreateCategory(name, description, icon, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		Icon:        icon,
		Color:       color,
		IsActive:    true,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// ListCategories returns all categories ordered by name ascending. Inactive
// categories are filtered out unless explicitly requested.
func (s *categoryService) ListCategories(includeInactive bool) ([]models.Category, error) {
	q := s.db.Model(&models.Category{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := q.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
