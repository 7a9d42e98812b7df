package app

import "time"

type DoseRuleInput struct {
	TimeOfDay string
	Weekdays  []string
}

type CreateScheduleInput struct {
	OwnerID   string
	Name      string
	Dosage    string
	Rules     []DoseRuleInput
	ValidFrom time.Time
	ValidTo   *time.Time
	Notes     string
}

// UpdateScheduleInput is a patch: nil fields keep their current value.
type UpdateScheduleInput struct {
	ID           string
	OwnerID      string
	Name         *string
	Dosage       *string
	Rules        []DoseRuleInput
	ValidFrom    *time.Time
	ValidTo      *time.Time
	ClearValidTo bool
	Notes        *string
}

type GetScheduleInput struct {
	ID      string
	OwnerID string
}

type ListSchedulesInput struct {
	OwnerID string
}

type DeleteScheduleInput struct {
	ID      string
	OwnerID string
}
