package domain

import "errors"

var (
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrOwnerNotFound      = errors.New("owner not found")

	ErrEmptyMedicationName = errors.New("medication name cannot be empty")
	ErrEmptyDosage         = errors.New("dosage cannot be empty")
	ErrNoDoseRules         = errors.New("at least one dose rule is required")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day: must be HH:MM in 24-hour format")
	ErrEmptyWeekdays       = errors.New("at least one weekday is required")
	ErrInvalidWeekday      = errors.New("invalid weekday")
	ErrMissingValidFrom    = errors.New("valid from date is required")
	ErrInvalidValidity     = errors.New("invalid validity window: valid to must not be before valid from")

	ErrInvalidOccurrenceStatus = errors.New("invalid occurrence status")
	ErrInvalidOutcome          = errors.New("outcome must be completed or missed")
	ErrOccurrenceNotPending    = errors.New("occurrence is not pending")
	ErrAlreadyNotified         = errors.New("occurrence is already notified")

	ErrInvalidTimeRange = errors.New("invalid time range: start must be before end")

	ErrInvalidScheduleID   = errors.New("invalid schedule ID")
	ErrInvalidOccurrenceID = errors.New("invalid occurrence ID")
	ErrInvalidOwnerID      = errors.New("invalid owner ID")
)
