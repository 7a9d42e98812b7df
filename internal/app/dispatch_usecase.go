package app

import (
	"context"
)

// DispatchUseCase runs one tick of the reminder dispatch loop.
type DispatchUseCase interface {
	RunTick(ctx context.Context) (DispatchReport, error)
}
