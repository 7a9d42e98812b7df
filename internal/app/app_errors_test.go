package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charlinto/MedRemApp/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		message       string
		expectedError string
	}{
		{
			name:          "owner_id validation error",
			field:         "owner_id",
			message:       "invalid owner ID",
			expectedError: "validation error: owner_id - invalid owner ID",
		},
		{
			name:          "indexed rule validation error",
			field:         "rules[1].time_of_day",
			message:       "invalid time of day",
			expectedError: "validation error: rules[1].time_of_day - invalid time of day",
		},
		{
			name:          "time_range validation error",
			field:         "time_range",
			message:       "start must be before end",
			expectedError: "validation error: time_range - start must be before end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.ErrorIs(t, err, app.ErrValidation)
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "sentinel only",
			err:      app.ErrValidation,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestReferentialErrorSuccess(t *testing.T) {
	err := &app.ReferentialError{OccurrenceID: "occ-1", Missing: "owner"}

	assert.Equal(t, "occurrence occ-1 references missing owner", err.Error())
	assert.True(t, app.IsReferentialError(fmt.Errorf("tick: %w", err)))
	assert.False(t, app.IsReferentialError(app.ErrNotFound))
}
