package domain

import "time"

// ValidityWindow bounds the instants at which a schedule may produce occurrences.
// Both ends are inclusive; a nil end means open-ended.
type ValidityWindow struct {
	from time.Time
	to   *time.Time
}

func NewValidityWindow(from time.Time, to *time.Time) (ValidityWindow, error) {
	if from.IsZero() {
		return ValidityWindow{}, ErrMissingValidFrom
	}

	if to != nil && to.Before(from) {
		return ValidityWindow{}, ErrInvalidValidity
	}

	var end *time.Time
	if to != nil {
		t := *to
		end = &t
	}

	return ValidityWindow{from: from, to: end}, nil
}

func (v ValidityWindow) From() time.Time {
	return v.from
}

// To returns the end of the window and whether one is set.
func (v ValidityWindow) To() (time.Time, bool) {
	if v.to == nil {
		return time.Time{}, false
	}

	return *v.to, true
}

func (v ValidityWindow) HasEnd() bool {
	return v.to != nil
}

func (v ValidityWindow) Contains(t time.Time) bool {
	if t.Before(v.from) {
		return false
	}

	return v.to == nil || !t.After(*v.to)
}
