// Package apperror provides structured error handling for the service.
// All business errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
// The HTTP status mapping lives in the handler layer, not here.
type Kind string

const (
	// KindNotFound - a referenced entity does not exist
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict - uniqueness or dependency violation
	KindConflict Kind = "CONFLICT"

	// KindInvalidInput - malformed or out-of-range field
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindInternal - unclassified store or infrastructure failure
	KindInternal Kind = "INTERNAL_ERROR"
)

// AppError is the standard error type for the service.
// It implements the error interface and carries a Kind that the
// transport layer translates into a status code.
type AppError struct {
	// Kind is the machine-readable error classification
	Kind Kind `json:"kind"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (entity, field, value)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewNotFound creates a not found error
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("no such %s: %v", entity, id),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewConflict creates a conflict error
func NewConflict(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewDuplicate creates a conflict error for a uniqueness violation
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s with this %s already exists", entity, field),
		Details: map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// NewInvalidInput creates an invalid input error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidInput,
		Message: message,
	}
}

// NewInternal creates an internal error (hides details from clients)
func NewInternal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind == kind
	}
	return false
}

// IsNotFound checks if error is KindNotFound
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsConflict checks if error is KindConflict
func IsConflict(err error) bool {
	return IsKind(err, KindConflict)
}
