package domain

import (
	"fmt"
	"strings"
)

type OccurrenceStatus string

const (
	StatusPending   OccurrenceStatus = "pending"
	StatusCompleted OccurrenceStatus = "completed"
	StatusMissed    OccurrenceStatus = "missed"
)

func NewOccurrenceStatus(s string) (OccurrenceStatus, error) {
	switch OccurrenceStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusMissed:
		return StatusMissed, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidOccurrenceStatus, s)
	}
}

// NewOutcome parses a user-facing resolution, which is any terminal status.
func NewOutcome(s string) (OccurrenceStatus, error) {
	status, err := NewOccurrenceStatus(s)
	if err != nil {
		return "", err
	}

	if !status.IsTerminal() {
		return "", ErrInvalidOutcome
	}

	return status, nil
}

func (s OccurrenceStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusMissed
}

func (s OccurrenceStatus) String() string {
	return string(s)
}
