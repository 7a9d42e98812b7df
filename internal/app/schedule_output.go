package app

import (
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type DoseRuleOutput struct {
	TimeOfDay string
	Weekdays  []string
}

type ScheduleOutput struct {
	ID        string
	OwnerID   string
	Name      string
	Dosage    string
	Rules     []DoseRuleOutput
	ValidFrom time.Time
	ValidTo   *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SchedulesOutput struct {
	Schedules []ScheduleOutput
	Count     int32
}

// ScheduleChangeOutput is returned by create and update, which both
// regenerate pending occurrences.
type ScheduleChangeOutput struct {
	Schedule  ScheduleOutput
	Reconcile ReconcileResult
}

type DeleteScheduleOutput struct {
	DeletedOccurrences int64
}

func ScheduleFromEntity(s *domain.Schedule) ScheduleOutput {
	rules := make([]DoseRuleOutput, 0, s.Rules().Count())
	for _, r := range s.Rules().ToSlice() {
		rules = append(rules, DoseRuleOutput{
			TimeOfDay: r.TimeOfDay().String(),
			Weekdays:  r.Weekdays().Names(),
		})
	}

	var validTo *time.Time
	if to, ok := s.Validity().To(); ok {
		validTo = &to
	}

	return ScheduleOutput{
		ID:        s.ID().String(),
		OwnerID:   s.OwnerID().String(),
		Name:      s.Name(),
		Dosage:    s.Dosage(),
		Rules:     rules,
		ValidFrom: s.Validity().From(),
		ValidTo:   validTo,
		Notes:     s.Notes(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func SchedulesFromEntities(schedules []*domain.Schedule) SchedulesOutput {
	outputs := make([]ScheduleOutput, 0, len(schedules))
	for _, s := range schedules {
		outputs = append(outputs, ScheduleFromEntity(s))
	}

	return SchedulesOutput{
		Schedules: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
