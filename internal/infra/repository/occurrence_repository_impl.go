package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/charlinto/MedRemApp/internal/domain"
)

const saveBatchSize = 100

type occurrenceRepositoryImpl struct {
	db *gorm.DB
}

func NewOccurrenceRepository(db *gorm.DB) domain.OccurrenceRepository {
	return &occurrenceRepositoryImpl{
		db: db,
	}
}

func (r *occurrenceRepositoryImpl) SaveAll(ctx context.Context, occurrences []*domain.Occurrence) error {
	if len(occurrences) == 0 {
		return nil
	}

	models := make([]*OccurrenceModel, 0, len(occurrences))
	for _, o := range occurrences {
		models = append(models, OccurrenceFromEntity(o))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, saveBatchSize).Error; err != nil {
		slog.ErrorContext(ctx, "failed to save occurrences to database",
			"count", len(models),
			"error", err,
		)

		return err
	}

	slog.DebugContext(ctx, "occurrences saved to database",
		"count", len(models),
	)

	return nil
}

func (r *occurrenceRepositoryImpl) FindByID(ctx context.Context, id domain.OccurrenceID) (*domain.Occurrence, error) {
	var m OccurrenceModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOccurrenceNotFound
		}

		slog.ErrorContext(ctx, "failed to find occurrence by ID",
			"occurrence_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *occurrenceRepositoryImpl) Find(ctx context.Context, filter domain.OccurrenceFilter) ([]*domain.Occurrence, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID.String())

	if filter.ScheduleID != nil {
		query = query.Where("schedule_id = ?", filter.ScheduleID.String())
	}

	if filter.From != nil {
		query = query.Where("scheduled_time >= ?", *filter.From)
	}

	if filter.To != nil {
		query = query.Where("scheduled_time <= ?", *filter.To)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var models []OccurrenceModel
	if err := query.Order("scheduled_time ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find occurrences",
			"owner_id", filter.OwnerID.String(),
			"error", err,
		)

		return nil, err
	}

	return occurrencesToEntities(models)
}

func (r *occurrenceRepositoryImpl) FindEligible(ctx context.Context, until time.Time, limit int) ([]domain.DueOccurrence, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND notified = ? AND scheduled_time <= ?", domain.StatusPending.String(), false, until).
		Where("dispatch_skipped_at IS NULL").
		Order("scheduled_time ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []OccurrenceModel
	if err := query.Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find eligible occurrences",
			"until", until,
			"error", err,
		)

		return nil, err
	}

	if len(models) == 0 {
		return nil, nil
	}

	scheduleIDs := make([]string, 0, len(models))
	ownerIDs := make([]string, 0, len(models))
	seen := make(map[string]struct{}, len(models)*2)

	for _, m := range models {
		if _, ok := seen[m.ScheduleID]; !ok {
			seen[m.ScheduleID] = struct{}{}
			scheduleIDs = append(scheduleIDs, m.ScheduleID)
		}

		if _, ok := seen[m.OwnerID]; !ok {
			seen[m.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, m.OwnerID)
		}
	}

	schedules, err := (&scheduleRepositoryImpl{db: r.db}).findByIDs(ctx, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	owners, err := (&ownerRepositoryImpl{db: r.db}).findByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}

	due := make([]domain.DueOccurrence, 0, len(models))
	for _, m := range models {
		occurrence, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		due = append(due, domain.DueOccurrence{
			Occurrence: occurrence,
			Schedule:   schedules[m.ScheduleID],
			Owner:      owners[m.OwnerID],
		})
	}

	slog.DebugContext(ctx, "eligible occurrences found",
		"count", len(due),
		"until", until,
	)

	return due, nil
}

func (r *occurrenceRepositoryImpl) Claim(ctx context.Context, id domain.OccurrenceID) (bool, error) {
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&OccurrenceModel{}).
		Where("id = ? AND notified = ? AND status = ?", id.String(), false, domain.StatusPending.String()).
		Updates(map[string]any{
			"notified":    true,
			"notified_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *occurrenceRepositoryImpl) MarkSkipped(ctx context.Context, id domain.OccurrenceID, reason string) error {
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&OccurrenceModel{}).
		Where("id = ? AND status = ? AND notified = ? AND dispatch_skipped_at IS NULL",
			id.String(), domain.StatusPending.String(), false).
		Updates(map[string]any{
			"dispatch_skipped_at": now,
			"skip_reason":         reason,
			"updated_at":          now,
		})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to mark occurrence skipped",
			"occurrence_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *occurrenceRepositoryImpl) RecordDeliveries(ctx context.Context, id domain.OccurrenceID, deliveries []domain.Delivery) error {
	result := r.db.WithContext(ctx).
		Model(&OccurrenceModel{}).
		Where("id = ?", id.String()).
		Updates(map[string]any{
			"deliveries": deliveriesToJSON(deliveries),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrOccurrenceNotFound
	}

	return nil
}

func (r *occurrenceRepositoryImpl) Resolve(ctx context.Context, occurrence *domain.Occurrence) error {
	m := OccurrenceFromEntity(occurrence)

	result := r.db.WithContext(ctx).
		Model(&OccurrenceModel{}).
		Where("id = ? AND status = ?", m.ID, domain.StatusPending.String()).
		Updates(map[string]any{
			"status":     m.Status,
			"taken_at":   m.TakenAt,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to resolve occurrence",
			"occurrence_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OccurrenceModel{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return domain.ErrOccurrenceNotFound
	}

	return domain.ErrOccurrenceNotPending
}

func (r *occurrenceRepositoryImpl) DeletePendingBySchedule(ctx context.Context, scheduleID domain.ScheduleID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("schedule_id = ? AND status = ? AND notified = ?", scheduleID.String(), domain.StatusPending.String(), false).
		Delete(&OccurrenceModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete pending occurrences",
			"schedule_id", scheduleID.String(),
			"error", result.Error,
		)

		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *occurrenceRepositoryImpl) DeleteBySchedule(ctx context.Context, scheduleID domain.ScheduleID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID.String()).
		Delete(&OccurrenceModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete occurrences by schedule",
			"schedule_id", scheduleID.String(),
			"error", result.Error,
		)

		return 0, result.Error
	}

	slog.DebugContext(ctx, "occurrences deleted by schedule",
		"schedule_id", scheduleID.String(),
		"count", result.RowsAffected,
	)

	return result.RowsAffected, nil
}

func occurrencesToEntities(models []OccurrenceModel) ([]*domain.Occurrence, error) {
	occurrences := make([]*domain.Occurrence, 0, len(models))
	for _, m := range models {
		occurrence, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert occurrence model to entity",
				"occurrence_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		occurrences = append(occurrences, occurrence)
	}

	return occurrences, nil
}
