package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categories services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=255"`
	Icon        string `json:"icon" binding:"max=50"`
	Color       string `json:"color" binding:"omitempty,hex_color"`
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func categoryView(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		Color:       category.Color,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
	}
}

// Create handles the creation of a new category
// @Summary     Create a category
// @Description Create a new expense category; the name must be unique
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categories.CreateCategory(req.Name, req.Description, req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, categoryView(category))
}

// List handles the retrieval of all categories
// @Summary     List categories
// @Description List all categories ordered by name; inactive ones only when requested
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       include_inactive query bool false "Include deactivated categories"
// @Success     200 {array} CategoryResponse "List of categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	categories, err := h.categories.ListCategories(includeInactive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		views = append(views, categoryView(&categories[i]))
	}

	c.JSON(http.StatusOK, views)
}

// Get handles the retrieval of a specific category
// @Summary     Get category by ID
// @Description Get a specific category by ID
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} CategoryResponse "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categories.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryView(category))
}
