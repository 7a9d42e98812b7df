package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type occurrenceUseCaseImpl struct {
	store    domain.RecordStore
	location *time.Location
	now      func() time.Time
}

func NewOccurrenceUseCase(store domain.RecordStore, location *time.Location, now func() time.Time) OccurrenceUseCase {
	if location == nil {
		location = time.Local
	}

	if now == nil {
		now = time.Now
	}

	return &occurrenceUseCaseImpl{
		store:    store,
		location: location,
		now:      now,
	}
}

func (uc *occurrenceUseCaseImpl) MarkOccurrence(ctx context.Context, input MarkOccurrenceInput) (OccurrenceOutput, error) {
	slog.DebugContext(ctx, "marking occurrence",
		"occurrence_id", input.ID,
		"outcome", input.Outcome,
	)

	occurrenceID, err := domain.OccurrenceIDFromString(input.ID)
	if err != nil {
		return OccurrenceOutput{}, NewValidationError("id", err.Error())
	}

	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return OccurrenceOutput{}, NewValidationError("owner_id", err.Error())
	}

	outcome, err := domain.NewOutcome(input.Outcome)
	if err != nil {
		return OccurrenceOutput{}, NewValidationError("status", err.Error())
	}

	occurrence, err := uc.store.Occurrences().FindByID(ctx, occurrenceID)
	if err != nil {
		if errors.Is(err, domain.ErrOccurrenceNotFound) {
			return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load occurrence",
			"error", err,
			"occurrence_id", input.ID,
		)

		return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !occurrence.OwnerID().Equals(ownerID) {
		return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrOccurrenceNotFound)
	}

	if err := occurrence.Resolve(outcome, uc.now()); err != nil {
		slog.InfoContext(ctx, "rejected status transition",
			"occurrence_id", input.ID,
			"from", occurrence.Status().String(),
			"to", outcome.String(),
		)

		return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := uc.store.Occurrences().Resolve(ctx, occurrence); err != nil {
		switch {
		case errors.Is(err, domain.ErrOccurrenceNotPending):
			return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		case errors.Is(err, domain.ErrOccurrenceNotFound):
			return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to resolve occurrence",
			"error", err,
			"occurrence_id", input.ID,
		)

		return OccurrenceOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "occurrence resolved",
		"occurrence_id", input.ID,
		"status", outcome.String(),
	)

	// The transition is stored; a failed lookup only costs the medication fields.
	schedule, err := uc.store.Schedules().FindByID(ctx, occurrence.ScheduleID())
	if err != nil && !errors.Is(err, domain.ErrScheduleNotFound) {
		slog.WarnContext(ctx, "failed to load schedule for resolved occurrence",
			"error", err,
			"occurrence_id", input.ID,
		)
	}

	return OccurrenceFromEntity(occurrence, schedule), nil
}

func (uc *occurrenceUseCaseImpl) ListOccurrences(ctx context.Context, input ListOccurrencesInput) (OccurrencesOutput, error) {
	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return OccurrencesOutput{}, NewValidationError("owner_id", err.Error())
	}

	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return OccurrencesOutput{}, NewValidationError("time_range", domain.ErrInvalidTimeRange.Error())
	}

	filter := domain.OccurrenceFilter{
		OwnerID: ownerID,
		From:    input.From,
		To:      input.To,
	}

	if input.Status != "" {
		status, err := domain.NewOccurrenceStatus(input.Status)
		if err != nil {
			return OccurrencesOutput{}, NewValidationError("status", err.Error())
		}

		filter.Status = &status
	}

	occurrences, err := uc.store.Occurrences().Find(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list occurrences",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return OccurrencesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	schedules, err := uc.store.Schedules().FindByOwner(ctx, ownerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load schedules for occurrences",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return OccurrencesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return OccurrencesFromEntities(occurrences, indexSchedules(schedules)), nil
}

func (uc *occurrenceUseCaseImpl) DailySummary(ctx context.Context, input DailySummaryInput) (DailySummaryOutput, error) {
	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return DailySummaryOutput{}, NewValidationError("owner_id", err.Error())
	}

	date := input.Date
	if date.IsZero() {
		date = uc.now()
	}

	y, m, d := date.In(uc.location).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, uc.location).Add(-time.Microsecond)

	occurrences, err := uc.store.Occurrences().Find(ctx, domain.OccurrenceFilter{
		OwnerID: ownerID,
		From:    &start,
		To:      &end,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to load occurrences for summary",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return DailySummaryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	schedules, err := uc.store.Schedules().FindByOwner(ctx, ownerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load schedules for summary",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return DailySummaryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	index := indexSchedules(schedules)

	summary := DailySummaryOutput{
		Date:        start.Format(time.DateOnly),
		Total:       len(occurrences),
		Medications: []string{},
		Occurrences: make([]OccurrenceOutput, 0, len(occurrences)),
	}

	seen := make(map[string]struct{})

	for _, o := range occurrences {
		switch o.Status() {
		case domain.StatusCompleted:
			summary.Completed++
		case domain.StatusMissed:
			summary.Missed++
		case domain.StatusPending:
			summary.Pending++
		}

		schedule := index[o.ScheduleID()]
		summary.Occurrences = append(summary.Occurrences, OccurrenceFromEntity(o, schedule))

		if schedule == nil {
			continue
		}

		if _, dup := seen[schedule.Name()]; !dup {
			seen[schedule.Name()] = struct{}{}
			summary.Medications = append(summary.Medications, schedule.Name())
		}
	}

	sort.Strings(summary.Medications)

	return summary, nil
}
