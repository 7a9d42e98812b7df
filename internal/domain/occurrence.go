package domain

import (
	"time"
)

type Occurrence struct {
	id            OccurrenceID
	ownerID       OwnerID
	scheduleID    ScheduleID
	scheduledTime time.Time
	status        OccurrenceStatus
	notified      bool
	takenAt       *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewOccurrence(
	ownerID OwnerID,
	scheduleID ScheduleID,
	scheduledTime time.Time,
) *Occurrence {
	now := time.Now()

	return &Occurrence{
		id:            NewOccurrenceID(),
		ownerID:       ownerID,
		scheduleID:    scheduleID,
		scheduledTime: scheduledTime,
		status:        StatusPending,
		notified:      false,
		takenAt:       nil,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstituteOccurrence(
	id OccurrenceID,
	ownerID OwnerID,
	scheduleID ScheduleID,
	scheduledTime time.Time,
	status OccurrenceStatus,
	notified bool,
	takenAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Occurrence {
	return &Occurrence{
		id:            id,
		ownerID:       ownerID,
		scheduleID:    scheduleID,
		scheduledTime: scheduledTime,
		status:        status,
		notified:      notified,
		takenAt:       takenAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Resolve moves a pending occurrence into a terminal status.
// Completed records at as the time the dose was taken.
func (o *Occurrence) Resolve(outcome OccurrenceStatus, at time.Time) error {
	if !outcome.IsTerminal() {
		return ErrInvalidOutcome
	}

	if o.status != StatusPending {
		return ErrOccurrenceNotPending
	}

	o.status = outcome
	if outcome == StatusCompleted {
		taken := at
		o.takenAt = &taken
	}

	o.updatedAt = time.Now()

	return nil
}

func (o *Occurrence) MarkNotified() error {
	if o.notified {
		return ErrAlreadyNotified
	}

	o.notified = true
	o.updatedAt = time.Now()

	return nil
}

// IsEligible reports whether the dispatch loop should pick the occurrence up at now.
func (o *Occurrence) IsEligible(now time.Time, lookahead time.Duration) bool {
	return o.status == StatusPending &&
		!o.notified &&
		!o.scheduledTime.After(now.Add(lookahead))
}

func (o *Occurrence) ID() OccurrenceID {
	return o.id
}

func (o *Occurrence) OwnerID() OwnerID {
	return o.ownerID
}

func (o *Occurrence) ScheduleID() ScheduleID {
	return o.scheduleID
}

func (o *Occurrence) ScheduledTime() time.Time {
	return o.scheduledTime
}

func (o *Occurrence) Status() OccurrenceStatus {
	return o.status
}

func (o *Occurrence) IsPending() bool {
	return o.status == StatusPending
}

func (o *Occurrence) IsNotified() bool {
	return o.notified
}

// TakenAt returns the time the dose was taken and whether it is known.
func (o *Occurrence) TakenAt() (time.Time, bool) {
	if o.takenAt == nil {
		return time.Time{}, false
	}

	return *o.takenAt, true
}

func (o *Occurrence) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Occurrence) UpdatedAt() time.Time {
	return o.updatedAt
}
