package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenses services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenses services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// CreateExpenseRequest represents the request payload for creating an expense
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes" binding:"max=1000"`
}

// UpdateExpenseRequest represents the sparse update payload; absent fields
// are left unchanged.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	CategoryID  *uint    `json:"category_id"`
	Description *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}

// listExpensesQuery holds the bound query parameters for listing expenses.
type listExpensesQuery struct {
	pagination.ListParams
	CategoryID *uint    `form:"category_id"`
	StartDate  string   `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string   `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	MinAmount  *float64 `form:"min_amount" binding:"omitempty,min=0"`
	MaxAmount  *float64 `form:"max_amount" binding:"omitempty,min=0"`
}

// ExpenseResponse represents an expense in the response, with its category
// embedded and the date rendered as YYYY-MM-DD.
type ExpenseResponse struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	CategoryID  uint             `json:"category_id"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Notes       string           `json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Category    CategoryResponse `json:"category"`
}

func expenseView(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date.Format(dateLayout),
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
		Category:    categoryView(&expense.Category),
	}
}

// Create handles the creation of a new expense
// @Summary     Create an expense
// @Description Create an expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input or inactive category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.CreateExpense(userID, req.Amount, req.CategoryID, req.Description, date, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expenseView(expense))
}

// List handles the retrieval of the user's expenses with optional filters
// @Summary     List expenses
// @Description List the authenticated user's expenses with conjunctive filters and pagination
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       skip query int false "Records to skip" default(0)
// @Param       limit query int false "Maximum records to return (1-500)" default(100)
// @Param       category_id query int false "Filter by category ID"
// @Param       start_date query string false "Expenses on or after this date (YYYY-MM-DD)"
// @Param       end_date query string false "Expenses on or before this date (YYYY-MM-DD)"
// @Param       min_amount query number false "Minimum amount"
// @Param       max_amount query number false "Maximum amount"
// @Success     200 {array} ExpenseResponse "List of expenses"
// @Failure     400 {object} ErrorResponse "Invalid query parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.ExpenseFilter{
		CategoryID: query.CategoryID,
		MinAmount:  query.MinAmount,
		MaxAmount:  query.MaxAmount,
	}
	if query.StartDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDate(query.EndDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		filter.EndDate = &end
	}

	expenses, err := h.expenses.ListExpenses(userID, query.ListParams, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		views = append(views, expenseView(&expenses[i]))
	}

	c.JSON(http.StatusOK, views)
}

// Get handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Description Get one of the authenticated user's expenses by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.GetExpenseByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenseView(expense))
}

// Update handles partial updates of an expense
// @Summary     Update an expense
// @Description Partially update one of the authenticated user's expenses; absent fields are unchanged
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or inactive category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense or category not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.ExpensePatch{
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		patch.Date = &date
	}

	expense, err := h.expenses.UpdateExpense(userID, id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenseView(expense))
}

// Delete handles the deletion of an expense
// @Summary     Delete an expense
// @Description Permanently delete one of the authenticated user's expenses
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenses.DeleteExpense(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
