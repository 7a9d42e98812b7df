package app

import (
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type OccurrenceOutput struct {
	ID             string
	OwnerID        string
	ScheduleID     string
	MedicationName string
	Dosage         string
	ScheduledTime  time.Time
	Status         string
	Notified       bool
	TakenAt        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OccurrencesOutput struct {
	Occurrences []OccurrenceOutput
	Count       int32
}

type DailySummaryOutput struct {
	Date        string
	Total       int
	Completed   int
	Pending     int
	Missed      int
	Medications []string
	// Occurrences lists the day's reminders in time order.
	Occurrences []OccurrenceOutput
}

// OccurrenceFromEntity converts o. The medication fields stay empty when
// schedule is nil.
func OccurrenceFromEntity(o *domain.Occurrence, schedule *domain.Schedule) OccurrenceOutput {
	var takenAt *time.Time
	if t, ok := o.TakenAt(); ok {
		takenAt = &t
	}

	output := OccurrenceOutput{
		ID:            o.ID().String(),
		OwnerID:       o.OwnerID().String(),
		ScheduleID:    o.ScheduleID().String(),
		ScheduledTime: o.ScheduledTime(),
		Status:        o.Status().String(),
		Notified:      o.IsNotified(),
		TakenAt:       takenAt,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	if schedule != nil {
		output.MedicationName = schedule.Name()
		output.Dosage = schedule.Dosage()
	}

	return output
}

func OccurrencesFromEntities(occurrences []*domain.Occurrence, schedules map[domain.ScheduleID]*domain.Schedule) OccurrencesOutput {
	outputs := make([]OccurrenceOutput, 0, len(occurrences))
	for _, o := range occurrences {
		outputs = append(outputs, OccurrenceFromEntity(o, schedules[o.ScheduleID()]))
	}

	return OccurrencesOutput{
		Occurrences: outputs,
		Count:       int32(len(outputs)), //nolint:gosec
	}
}

func indexSchedules(schedules []*domain.Schedule) map[domain.ScheduleID]*domain.Schedule {
	index := make(map[domain.ScheduleID]*domain.Schedule, len(schedules))
	for _, s := range schedules {
		index[s.ID()] = s
	}

	return index
}
