// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"gearshop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Absent reads are not errors at the gateway level;
// ErrNotFound covers lookups of records callers expect to exist.
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrValidationRejected = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_REJECTED",
		"Input validation failed",
		"",
	)

	ErrPaymentChannelsDisabled = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_CHANNELS_DISABLED",
		"At least one payment method must stay enabled",
		"",
	)

	ErrPaymentMethodDisabled = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_DISABLED",
		"The selected payment method is not available",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty",
		"",
	)

	ErrRemoteReadFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_READ_FAILED",
		"Failed to read from the data gateway",
		"",
	)

	ErrRemoteWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_WRITE_FAILED",
		"Failed to write to the data gateway",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrIdentityCreationFailed = NewBaseError(
		http.StatusConflict,
		"IDENTITY_CREATION_FAILED",
		"Could not create the account",
		"",
	)

	ErrMediaRejected = NewBaseError(
		http.StatusBadRequest,
		"MEDIA_REJECTED",
		"Image must be an image/* type of at most 5MB",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
