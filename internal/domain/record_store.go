package domain

import (
	"context"
)

//go:generate mockgen -source=record_store.go -destination=record_store_mock.go -package=domain

type RecordStore interface {
	Schedules() ScheduleRepository
	Occurrences() OccurrenceRepository
	Owners() OwnerRepository
	WithTx(ctx context.Context, fn func(store RecordStore) error) error
}
