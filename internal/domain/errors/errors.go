package errors

import (
	"maps"
	"net/http"
	"sort"
	"strings"

	"foodcritic/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// ReasonCarrier is implemented by errors that explain themselves field by field.
type ReasonCarrier interface {
	Reasons() map[string]string
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

// Predefined error types
var (
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Contact not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Bad Request",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError reports every field constraint that failed for one entity.
type ValidationError struct {
	reasons map[string]string
}

// NewValidationError creates a validation error from a field -> message map.
func NewValidationError(reasons map[string]string) *ValidationError {
	return &ValidationError{reasons: maps.Clone(reasons)}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.reasons))
	for field := range e.reasons {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return "validation failed: " + strings.Join(fields, ", ")
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return "Bad Request" }
func (e *ValidationError) Details() string   { return "" }

// Reasons returns a copy of the failed fields and their messages.
func (e *ValidationError) Reasons() map[string]string {
	return maps.Clone(e.reasons)
}

// ConflictError signals that a natural key is already held by another record.
type ConflictError struct {
	errorCode string
	field     string
	message   string
}

// NewConflictError creates a uniqueness violation for a single field.
func NewConflictError(errorCode, field, message string) *ConflictError {
	return &ConflictError{
		errorCode: errorCode,
		field:     field,
		message:   message,
	}
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.errorCode + ": " + e.message
}

func (e *ConflictError) HTTPCode() int     { return http.StatusConflict }
func (e *ConflictError) ErrorCode() string { return e.errorCode }
func (e *ConflictError) Message() string   { return e.message }
func (e *ConflictError) Details() string   { return "" }

// Field returns the name of the colliding field.
func (e *ConflictError) Field() string {
	return e.field
}

// Reasons returns the single colliding field.
func (e *ConflictError) Reasons() map[string]string {
	return map[string]string{e.field: e.message}
}

// Per-entity uniqueness violations.
var (
	ErrContactEmailTaken = NewConflictError(
		"CONTACT_EMAIL_TAKEN",
		"email",
		"That email is already used, please use a unique email",
	)

	ErrUserEmailTaken = NewConflictError(
		"USER_EMAIL_TAKEN",
		"email",
		"That email is already used, please use a unique email",
	)

	ErrRestaurantPhonenumberTaken = NewConflictError(
		"RESTAURANT_PHONENUMBER_TAKEN",
		"phonenumber",
		"That phonenumber is already used, please use a unique phonenumber",
	)

	ErrReviewAlreadyExists = NewConflictError(
		"REVIEW_ALREADY_EXISTS",
		"restaurant",
		"That user has already reviewed this restaurant, please review another restaurant",
	)
)

// ReferenceError reports a reference to another entity that does not resolve.
type ReferenceError struct {
	field   string
	message string
}

// NewReferenceError creates a reference error for the given field.
func NewReferenceError(field, message string) *ReferenceError {
	return &ReferenceError{field: field, message: message}
}

// Error implements the error interface
func (e *ReferenceError) Error() string {
	return e.message
}

func (e *ReferenceError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ReferenceError) ErrorCode() string { return "INVALID_REFERENCE" }
func (e *ReferenceError) Message() string   { return e.message }
func (e *ReferenceError) Details() string   { return "" }

// Field returns the name of the unresolved reference.
func (e *ReferenceError) Field() string {
	return e.field
}

// Reasons returns the unresolved reference.
func (e *ReferenceError) Reasons() map[string]string {
	return map[string]string{e.field: e.message}
}

// Review references.
var (
	ErrReviewUserReference       = NewReferenceError("user.id", "UserId is incorrect")
	ErrReviewRestaurantReference = NewReferenceError("restaurant.id", "RestaurantId is incorrect")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsTyped reports whether err carries one of the typed outcomes that callers
// propagate unchanged: validation, conflict, reference or not-found.
func IsTyped(err error) bool {
	var validationErr *ValidationError
	var conflictErr *ConflictError
	var referenceErr *ReferenceError
	var baseErr *BaseError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &conflictErr), errors.As(err, &referenceErr):
		return true
	case errors.As(err, &baseErr):
		return baseErr.HTTPCode() < http.StatusInternalServerError
	default:
		return false
	}
}
