package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type recordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) domain.RecordStore {
	return &recordStore{
		db: db,
	}
}

func (s *recordStore) Schedules() domain.ScheduleRepository {
	return &scheduleRepositoryImpl{db: s.db}
}

func (s *recordStore) Occurrences() domain.OccurrenceRepository {
	return &occurrenceRepositoryImpl{db: s.db}
}

func (s *recordStore) Owners() domain.OwnerRepository {
	return &ownerRepositoryImpl{db: s.db}
}

func (s *recordStore) WithTx(ctx context.Context, fn func(store domain.RecordStore) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.ErrorContext(ctx, "failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	if err := fn(&recordStore{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.ErrorContext(ctx, "failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}

// Migrate creates or updates the tables of the record store.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
