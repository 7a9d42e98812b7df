package app

import (
	"context"
)

type ScheduleUseCase interface {
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (ScheduleChangeOutput, error)
	UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleChangeOutput, error)
	DeleteSchedule(ctx context.Context, input DeleteScheduleInput) (DeleteScheduleOutput, error)
	GetSchedule(ctx context.Context, input GetScheduleInput) (ScheduleOutput, error)
	ListSchedules(ctx context.Context, input ListSchedulesInput) (SchedulesOutput, error)
}
