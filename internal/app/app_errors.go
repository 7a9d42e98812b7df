package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("resource not found")
	ErrInternalError     = errors.New("internal error")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// ReferentialError reports an occurrence whose schedule or owner data is
// missing at dispatch time.
type ReferentialError struct {
	OccurrenceID string
	Missing      string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("occurrence %s references missing %s", e.OccurrenceID, e.Missing)
}

func IsReferentialError(err error) bool {
	var referentialErr *ReferentialError

	return errors.As(err, &referentialErr)
}
