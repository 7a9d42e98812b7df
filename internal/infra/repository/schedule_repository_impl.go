package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type scheduleRepositoryImpl struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domain.ScheduleRepository {
	return &scheduleRepositoryImpl{
		db: db,
	}
}

func (r *scheduleRepositoryImpl) Save(ctx context.Context, schedule *domain.Schedule) error {
	slog.DebugContext(ctx, "saving schedule to database",
		"schedule_id", schedule.ID().String(),
	)

	m := ScheduleFromEntity(schedule)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		slog.ErrorContext(ctx, "failed to save schedule to database",
			"schedule_id", schedule.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *scheduleRepositoryImpl) FindByID(ctx context.Context, id domain.ScheduleID) (*domain.Schedule, error) {
	var m ScheduleModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "schedule not found",
				"schedule_id", id.String(),
			)

			return nil, domain.ErrScheduleNotFound
		}

		slog.ErrorContext(ctx, "failed to find schedule by ID",
			"schedule_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *scheduleRepositoryImpl) FindByOwner(ctx context.Context, ownerID domain.OwnerID) ([]*domain.Schedule, error) {
	var models []ScheduleModel

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("valid_from DESC").
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find schedules by owner",
			"owner_id", ownerID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return schedulesToEntities(models)
}

func (r *scheduleRepositoryImpl) Update(ctx context.Context, schedule *domain.Schedule) error {
	m := ScheduleFromEntity(schedule)

	// valid_to and notes may be cleared, so every mutable column is written.
	result := r.db.WithContext(ctx).
		Model(&ScheduleModel{}).
		Where("id = ?", m.ID).
		Select("name", "dosage", "rules", "valid_from", "valid_to", "notes", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update schedule in database",
			"schedule_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}

	slog.DebugContext(ctx, "schedule updated in database",
		"schedule_id", m.ID,
	)

	return nil
}

func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id domain.ScheduleID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ScheduleModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete schedule from database",
			"schedule_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}

	return nil
}

func schedulesToEntities(models []ScheduleModel) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0, len(models))
	for _, m := range models {
		schedule, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert schedule model to entity",
				"schedule_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func (r *scheduleRepositoryImpl) findByIDs(ctx context.Context, ids []string) (map[string]*domain.Schedule, error) {
	schedules := make(map[string]*domain.Schedule, len(ids))
	if len(ids) == 0 {
		return schedules, nil
	}

	var models []ScheduleModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	for _, m := range models {
		schedule, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		schedules[m.ID] = schedule
	}

	return schedules, nil
}
