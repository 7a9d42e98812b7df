package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type ReconcileResult struct {
	Deleted int64
	Created int
}

// OccurrenceManager regenerates the pending occurrences of a schedule.
// Completed and missed occurrences are never touched.
type OccurrenceManager struct {
	expander    *domain.Expander
	horizonDays int
	now         func() time.Time
}

func NewOccurrenceManager(expander *domain.Expander, horizonDays int, now func() time.Time) *OccurrenceManager {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}

	if now == nil {
		now = time.Now
	}

	return &OccurrenceManager{
		expander:    expander,
		horizonDays: horizonDays,
		now:         now,
	}
}

// Reconcile deletes the un-notified pending occurrences of schedule, expands
// it over the horizon and stores the deduplicated candidates as new pending
// occurrences.
// Running it again on an unchanged schedule produces the same pending set.
func (m *OccurrenceManager) Reconcile(
	ctx context.Context,
	occurrences domain.OccurrenceRepository,
	schedule *domain.Schedule,
) (ReconcileResult, error) {
	deleted, err := occurrences.DeletePendingBySchedule(ctx, schedule.ID())
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to delete pending occurrences: %w", err)
	}

	horizonStart := m.now()
	candidates := domain.DedupCandidates(m.expander.Expand(schedule, horizonStart, m.horizonDays))

	// Whatever survived the delete keeps its slot: a dose taken early must
	// not be scheduled again, and a notified one must not be re-sent.
	scheduleID := schedule.ID()

	kept, err := occurrences.Find(ctx, domain.OccurrenceFilter{
		OwnerID:    schedule.OwnerID(),
		ScheduleID: &scheduleID,
		From:       &horizonStart,
	})
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to load kept occurrences: %w", err)
	}

	taken := make(map[int64]struct{}, len(kept))
	for _, o := range kept {
		taken[o.ScheduledTime().UnixNano()] = struct{}{}
	}

	created := make([]*domain.Occurrence, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[c.ScheduledTime.UnixNano()]; ok {
			continue
		}

		created = append(created, domain.NewOccurrence(c.OwnerID, c.ScheduleID, c.ScheduledTime))
	}

	if len(created) > 0 {
		if err := occurrences.SaveAll(ctx, created); err != nil {
			return ReconcileResult{}, fmt.Errorf("failed to save occurrences: %w", err)
		}
	}

	slog.DebugContext(ctx, "occurrences reconciled",
		slog.String("schedule_id", schedule.ID().String()),
		slog.Int64("deleted", deleted),
		slog.Int("created", len(created)),
		slog.Int("horizon_days", m.horizonDays),
	)

	return ReconcileResult{
		Deleted: deleted,
		Created: len(created),
	}, nil
}
