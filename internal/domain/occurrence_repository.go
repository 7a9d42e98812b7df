package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=occurrence_repository.go -destination=occurrence_repository_mock.go -package=domain

type OccurrenceFilter struct {
	OwnerID    OwnerID
	ScheduleID *ScheduleID
	From       *time.Time
	To         *time.Time
	Status     *OccurrenceStatus
}

// DueOccurrence is an eligible occurrence joined with its schedule and owner.
// Schedule or Owner is nil when the referenced record does not exist.
type DueOccurrence struct {
	Occurrence *Occurrence
	Schedule   *Schedule
	Owner      *Owner
}

type OccurrenceRepository interface {
	SaveAll(ctx context.Context, occurrences []*Occurrence) error
	FindByID(ctx context.Context, id OccurrenceID) (*Occurrence, error)
	Find(ctx context.Context, filter OccurrenceFilter) ([]*Occurrence, error)
	// FindEligible returns pending, un-notified occurrences scheduled at or
	// before until, oldest first. Occurrences marked skipped are left out.
	// A limit <= 0 means no limit.
	FindEligible(ctx context.Context, until time.Time, limit int) ([]DueOccurrence, error)
	// Claim flips notified from false to true and reports whether this call
	// performed the flip.
	Claim(ctx context.Context, id OccurrenceID) (bool, error)
	// MarkSkipped takes an un-notified pending occurrence out of dispatch
	// because it cannot be delivered. Rebuilding the schedule's occurrences
	// clears the mark.
	MarkSkipped(ctx context.Context, id OccurrenceID, reason string) error
	RecordDeliveries(ctx context.Context, id OccurrenceID, deliveries []Delivery) error
	// Resolve persists a status transition made by Occurrence.Resolve. It only
	// applies while the stored occurrence is still pending.
	Resolve(ctx context.Context, occurrence *Occurrence) error
	// DeletePendingBySchedule removes the pending occurrences of a schedule
	// that have not been notified yet. Notified ones stay so the reminder is
	// never sent twice for the same slot.
	DeletePendingBySchedule(ctx context.Context, scheduleID ScheduleID) (int64, error)
	DeleteBySchedule(ctx context.Context, scheduleID ScheduleID) (int64, error)
}
