package domain

import (
	"context"
)

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

type ScheduleRepository interface {
	Save(ctx context.Context, schedule *Schedule) error
	FindByID(ctx context.Context, id ScheduleID) (*Schedule, error)
	FindByOwner(ctx context.Context, ownerID OwnerID) ([]*Schedule, error)
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id ScheduleID) error
}
