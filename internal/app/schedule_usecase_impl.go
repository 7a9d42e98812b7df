package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type scheduleUseCaseImpl struct {
	store   domain.RecordStore
	manager *OccurrenceManager
}

func NewScheduleUseCase(store domain.RecordStore, manager *OccurrenceManager) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		store:   store,
		manager: manager,
	}
}

func (uc *scheduleUseCaseImpl) CreateSchedule(ctx context.Context, input CreateScheduleInput) (ScheduleChangeOutput, error) {
	slog.DebugContext(ctx, "creating schedule",
		"owner_id", input.OwnerID,
		"rules_count", len(input.Rules),
	)

	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return ScheduleChangeOutput{}, NewValidationError("owner_id", err.Error())
	}

	rules, err := buildDoseRules(input.Rules)
	if err != nil {
		return ScheduleChangeOutput{}, err
	}

	validity, err := domain.NewValidityWindow(input.ValidFrom, input.ValidTo)
	if err != nil {
		return ScheduleChangeOutput{}, validityError(err)
	}

	schedule, err := domain.NewSchedule(ownerID, input.Name, input.Dosage, rules, validity, input.Notes)
	if err != nil {
		return ScheduleChangeOutput{}, scheduleValidationError(err)
	}

	var result ReconcileResult

	if err := uc.store.WithTx(ctx, func(tx domain.RecordStore) error {
		if err := tx.Schedules().Save(ctx, schedule); err != nil {
			return err
		}

		result, err = uc.manager.Reconcile(ctx, tx.Occurrences(), schedule)

		return err
	}); err != nil {
		slog.ErrorContext(ctx, "failed to create schedule",
			"error", err,
			"schedule_id", schedule.ID().String(),
		)

		return ScheduleChangeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "schedule created",
		"schedule_id", schedule.ID().String(),
		"occurrences_created", result.Created,
	)

	return ScheduleChangeOutput{
		Schedule:  ScheduleFromEntity(schedule),
		Reconcile: result,
	}, nil
}

func (uc *scheduleUseCaseImpl) UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleChangeOutput, error) {
	slog.DebugContext(ctx, "updating schedule",
		"schedule_id", input.ID,
	)

	schedule, err := uc.findOwned(ctx, input.ID, input.OwnerID)
	if err != nil {
		return ScheduleChangeOutput{}, err
	}

	revision, err := buildRevision(schedule, input)
	if err != nil {
		return ScheduleChangeOutput{}, err
	}

	if err := schedule.Revise(revision); err != nil {
		return ScheduleChangeOutput{}, scheduleValidationError(err)
	}

	var result ReconcileResult

	if err := uc.store.WithTx(ctx, func(tx domain.RecordStore) error {
		if err := tx.Schedules().Update(ctx, schedule); err != nil {
			return err
		}

		result, err = uc.manager.Reconcile(ctx, tx.Occurrences(), schedule)

		return err
	}); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return ScheduleChangeOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update schedule",
			"error", err,
			"schedule_id", input.ID,
		)

		return ScheduleChangeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "schedule updated",
		"schedule_id", input.ID,
		"occurrences_deleted", result.Deleted,
		"occurrences_created", result.Created,
	)

	return ScheduleChangeOutput{
		Schedule:  ScheduleFromEntity(schedule),
		Reconcile: result,
	}, nil
}

func (uc *scheduleUseCaseImpl) DeleteSchedule(ctx context.Context, input DeleteScheduleInput) (DeleteScheduleOutput, error) {
	slog.DebugContext(ctx, "deleting schedule",
		"schedule_id", input.ID,
	)

	schedule, err := uc.findOwned(ctx, input.ID, input.OwnerID)
	if err != nil {
		return DeleteScheduleOutput{}, err
	}

	var deleted int64

	if err := uc.store.WithTx(ctx, func(tx domain.RecordStore) error {
		deleted, err = tx.Occurrences().DeleteBySchedule(ctx, schedule.ID())
		if err != nil {
			return err
		}

		return tx.Schedules().Delete(ctx, schedule.ID())
	}); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return DeleteScheduleOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete schedule",
			"error", err,
			"schedule_id", input.ID,
		)

		return DeleteScheduleOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "schedule deleted",
		"schedule_id", input.ID,
		"occurrences_deleted", deleted,
	)

	return DeleteScheduleOutput{DeletedOccurrences: deleted}, nil
}

func (uc *scheduleUseCaseImpl) GetSchedule(ctx context.Context, input GetScheduleInput) (ScheduleOutput, error) {
	schedule, err := uc.findOwned(ctx, input.ID, input.OwnerID)
	if err != nil {
		return ScheduleOutput{}, err
	}

	return ScheduleFromEntity(schedule), nil
}

func (uc *scheduleUseCaseImpl) ListSchedules(ctx context.Context, input ListSchedulesInput) (SchedulesOutput, error) {
	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return SchedulesOutput{}, NewValidationError("owner_id", err.Error())
	}

	schedules, err := uc.store.Schedules().FindByOwner(ctx, ownerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list schedules",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return SchedulesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return SchedulesFromEntities(schedules), nil
}

// findOwned loads a schedule and hides schedules of other owners behind ErrNotFound.
func (uc *scheduleUseCaseImpl) findOwned(ctx context.Context, id, owner string) (*domain.Schedule, error) {
	scheduleID, err := domain.ScheduleIDFromString(id)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	ownerID, err := domain.OwnerIDFromString(owner)
	if err != nil {
		return nil, NewValidationError("owner_id", err.Error())
	}

	schedule, err := uc.store.Schedules().FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load schedule",
			"error", err,
			"schedule_id", id,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !schedule.IsOwnedBy(ownerID) {
		slog.WarnContext(ctx, "schedule requested by another owner",
			"schedule_id", id,
			"owner_id", owner,
		)

		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrScheduleNotFound)
	}

	return schedule, nil
}

func buildDoseRules(inputs []DoseRuleInput) (domain.DoseRules, error) {
	if len(inputs) == 0 {
		return nil, NewValidationError("rules", domain.ErrNoDoseRules.Error())
	}

	rules := make([]domain.DoseRule, 0, len(inputs))
	for i, in := range inputs {
		tod, err := domain.ParseTimeOfDay(in.TimeOfDay)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("rules[%d].time_of_day", i), err.Error())
		}

		weekdays, err := domain.WeekdaySetFromNames(in.Weekdays)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("rules[%d].weekdays", i), err.Error())
		}

		rule, err := domain.NewDoseRule(tod, weekdays)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("rules[%d]", i), err.Error())
		}

		rules = append(rules, rule)
	}

	r, err := domain.NewDoseRules(rules)
	if err != nil {
		return nil, NewValidationError("rules", err.Error())
	}

	return r, nil
}

func buildRevision(schedule *domain.Schedule, input UpdateScheduleInput) (domain.ScheduleRevision, error) {
	revision := domain.ScheduleRevision{
		Name:     schedule.Name(),
		Dosage:   schedule.Dosage(),
		Rules:    schedule.Rules(),
		Validity: schedule.Validity(),
		Notes:    schedule.Notes(),
	}

	if input.Name != nil {
		revision.Name = *input.Name
	}

	if input.Dosage != nil {
		revision.Dosage = *input.Dosage
	}

	if input.Notes != nil {
		revision.Notes = *input.Notes
	}

	if input.Rules != nil {
		rules, err := buildDoseRules(input.Rules)
		if err != nil {
			return domain.ScheduleRevision{}, err
		}

		revision.Rules = rules
	}

	if input.ValidFrom != nil || input.ValidTo != nil || input.ClearValidTo {
		from := schedule.Validity().From()
		if input.ValidFrom != nil {
			from = *input.ValidFrom
		}

		var to *time.Time
		if current, ok := schedule.Validity().To(); ok && !input.ClearValidTo {
			to = &current
		}

		if input.ValidTo != nil {
			to = input.ValidTo
		}

		validity, err := domain.NewValidityWindow(from, to)
		if err != nil {
			return domain.ScheduleRevision{}, validityError(err)
		}

		revision.Validity = validity
	}

	return revision, nil
}

func validityError(err error) error {
	if errors.Is(err, domain.ErrMissingValidFrom) {
		return NewValidationError("valid_from", err.Error())
	}

	return NewValidationError("valid_to", err.Error())
}

func scheduleValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyMedicationName):
		return NewValidationError("name", err.Error())
	case errors.Is(err, domain.ErrEmptyDosage):
		return NewValidationError("dosage", err.Error())
	case errors.Is(err, domain.ErrNoDoseRules), errors.Is(err, domain.ErrEmptyWeekdays):
		return NewValidationError("rules", err.Error())
	case errors.Is(err, domain.ErrMissingValidFrom):
		return NewValidationError("valid_from", err.Error())
	case errors.Is(err, domain.ErrInvalidOwnerID):
		return NewValidationError("owner_id", err.Error())
	default:
		return NewValidationError("schedule", err.Error())
	}
}
