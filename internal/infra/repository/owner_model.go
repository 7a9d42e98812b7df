package repository

import (
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type OwnerModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Email       string    `gorm:"column:email;type:varchar(320);not null"`
	DeviceToken string    `gorm:"column:device_token;type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (OwnerModel) TableName() string {
	return "schedule_owners"
}

func (m *OwnerModel) ToEntity() (*domain.Owner, error) {
	ownerID, err := domain.OwnerIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.NewOwner(ownerID, m.Email, m.DeviceToken)
}

func OwnerFromEntity(e *domain.Owner) *OwnerModel {
	now := time.Now()

	return &OwnerModel{
		ID:          e.ID().String(),
		Email:       e.Email(),
		DeviceToken: e.DeviceToken(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Models lists every table the record store owns, in migration order.
func Models() []any {
	return []any{
		&OwnerModel{},
		&ScheduleModel{},
		&OccurrenceModel{},
	}
}
