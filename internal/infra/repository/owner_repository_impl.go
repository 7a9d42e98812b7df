package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type ownerRepositoryImpl struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) domain.OwnerRepository {
	return &ownerRepositoryImpl{
		db: db,
	}
}

func (r *ownerRepositoryImpl) Save(ctx context.Context, owner *domain.Owner) error {
	m := OwnerFromEntity(owner)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "device_token", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		slog.ErrorContext(ctx, "failed to save owner to database",
			"owner_id", m.ID,
			"error", err,
		)

		return err
	}

	return nil
}

func (r *ownerRepositoryImpl) FindByID(ctx context.Context, id domain.OwnerID) (*domain.Owner, error) {
	var m OwnerModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOwnerNotFound
		}

		slog.ErrorContext(ctx, "failed to find owner by ID",
			"owner_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *ownerRepositoryImpl) findByIDs(ctx context.Context, ids []string) (map[string]*domain.Owner, error) {
	owners := make(map[string]*domain.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	var models []OwnerModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	for _, m := range models {
		owner, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		owners[m.ID] = owner
	}

	return owners, nil
}
