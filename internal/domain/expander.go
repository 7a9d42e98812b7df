package domain

import (
	"time"
)

const DefaultHorizonDays = 30

type Candidate struct {
	ScheduleID    ScheduleID
	OwnerID       OwnerID
	ScheduledTime time.Time
}

type Expander struct {
	location *time.Location
	now      func() time.Time
}

// NewExpander returns an expander that builds wall-clock instants in loc.
// A nil loc means time.Local and a nil now means time.Now.
func NewExpander(loc *time.Location, now func() time.Time) *Expander {
	if loc == nil {
		loc = time.Local
	}

	if now == nil {
		now = time.Now
	}

	return &Expander{
		location: loc,
		now:      now,
	}
}

func (e *Expander) Location() *time.Location {
	return e.location
}

// Expand produces the candidate occurrences of schedule over
// horizonDays calendar days starting at the date of horizonStart.
//
// 1. Rules are walked in order, and for each rule the days of the horizon in order.
//
// 2. A candidate is the day's date at the rule's time of day, for each day whose
// weekday is in the rule.
//
// 3. Candidates strictly before now, before the validity start or after the
// validity end are dropped.
//
// Candidates of overlapping rules are not merged; see DedupCandidates.
func (e *Expander) Expand(schedule *Schedule, horizonStart time.Time, horizonDays int) []Candidate {
	if schedule == nil || horizonDays <= 0 {
		return nil
	}

	now := e.now()
	validity := schedule.Validity()
	y, m, d := horizonStart.In(e.location).Date()

	candidates := make([]Candidate, 0)

	for _, rule := range schedule.Rules().ToSlice() {
		for i := 0; i < horizonDays; i++ {
			day := time.Date(y, m, d+i, 0, 0, 0, 0, e.location)
			if !rule.Weekdays().Contains(day.Weekday()) {
				continue
			}

			at := rule.TimeOfDay().On(day, e.location)

			if at.Before(now) {
				continue
			}

			if !validity.Contains(at) {
				continue
			}

			candidates = append(candidates, Candidate{
				ScheduleID:    schedule.ID(),
				OwnerID:       schedule.OwnerID(),
				ScheduledTime: at,
			})
		}
	}

	return candidates
}

// DedupCandidates keeps the first candidate for each instant.
func DedupCandidates(candidates []Candidate) []Candidate {
	seen := make(map[int64]struct{}, len(candidates))
	result := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		key := c.ScheduledTime.UnixNano()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, c)
	}

	return result
}
