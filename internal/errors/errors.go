// Package errors provides custom error types for the Spendwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication and authorization errors. InvalidCredentials is shared by the
// unknown-email and wrong-password paths so the two are indistinguishable.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Incorrect email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Could not validate credentials", StatusCode: http.StatusUnauthorized}
	ErrInactiveUser       = &AppError{Code: "INACTIVE_USER", Message: "User account is inactive", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors. Duplicates return 400 to match the public interface contract.
var (
	ErrEmailTaken    = &AppError{Code: "EMAIL_TAKEN", Message: "Email already registered", StatusCode: http.StatusBadRequest}
	ErrUsernameTaken = &AppError{Code: "USERNAME_TAKEN", Message: "Username already taken", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryExists   = &AppError{Code: "CATEGORY_EXISTS", Message: "Category with this name already exists", StatusCode: http.StatusBadRequest}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrInactiveCategory = &AppError{Code: "INACTIVE_CATEGORY", Message: "Cannot use an inactive category", StatusCode: http.StatusBadRequest}
)

// Expense errors. NotFound covers both a missing record and a record owned by
// another user, so existence of other users' expenses is never leaked.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Mail relay errors.
var (
	ErrMailDelivery = &AppError{Code: "MAIL_DELIVERY_FAILED", Message: "Failed to send email", StatusCode: http.StatusInternalServerError}
)
