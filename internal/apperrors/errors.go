package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidInput indicates a numeric input to the deal calculators is outside its
// documented domain (negative principal, zero term, negative rate...).
// Calculators fail fast with this error instead of coercing the value.
var ErrInvalidInput = errors.New("invalid input")

// ErrDuplicateScenarioTerm indicates that two candidate terms of the same kind
// would produce scenarios with the same id.
var ErrDuplicateScenarioTerm = errors.New("duplicate scenario term")

// ErrConflict indicates that the requested operation is not allowed in the
// resource's current state.
var ErrConflict = errors.New("conflict with current state")

// AppError carries an HTTP status code alongside a wrapped infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
