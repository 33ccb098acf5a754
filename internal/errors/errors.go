// Package errors provides custom error types for the Hestia API.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Property errors.
var (
	ErrPropertyNotFound = &AppError{Code: "PROPERTY_NOT_FOUND", Message: "Property not found", StatusCode: http.StatusNotFound}
	ErrRoomNotFound     = &AppError{Code: "ROOM_NOT_FOUND", Message: "Room not found", StatusCode: http.StatusNotFound}
	ErrRoomMismatch     = &AppError{Code: "ROOM_MISMATCH", Message: "Room belongs to a different property", StatusCode: http.StatusBadRequest}
	ErrAssetNotFound    = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrWorkerNotFound   = &AppError{Code: "WORKER_NOT_FOUND", Message: "Worker not found", StatusCode: http.StatusNotFound}
	ErrShutoffNotFound  = &AppError{Code: "SHUTOFF_NOT_FOUND", Message: "Shutoff point not found", StatusCode: http.StatusNotFound}
	ErrPaintNotFound    = &AppError{Code: "PAINT_CODE_NOT_FOUND", Message: "Paint code not found", StatusCode: http.StatusNotFound}
)

// Expense & maintenance errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrTaskNotFound    = &AppError{Code: "TASK_NOT_FOUND", Message: "Maintenance task not found", StatusCode: http.StatusNotFound}
)

// Recurring bill errors.
var (
	ErrTemplateNotFound = &AppError{Code: "TEMPLATE_NOT_FOUND", Message: "Bill template not found", StatusCode: http.StatusNotFound}
	ErrPaymentNotFound  = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Payment record not found", StatusCode: http.StatusNotFound}
)
