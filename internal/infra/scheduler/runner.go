// Package scheduler drives the dispatch loop from a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/charlinto/MedRemApp/internal/app"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
)

var ErrInvalidPeriod = errors.New("tick period must be positive")

// Runner invokes one dispatch tick per period. A tick that is still running
// when the next one is due makes the next one skip.
type Runner struct {
	cron     *cron.Cron
	dispatch app.DispatchUseCase
	period   time.Duration
	entry    cron.EntryID
}

func NewRunner(dispatch app.DispatchUseCase, period time.Duration) (*Runner, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}

	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn))

	return &Runner{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		dispatch: dispatch,
		period:   period,
	}, nil
}

// Start schedules the tick and returns immediately. Ticks inherit ctx's
// values but not its cancellation: a started batch always runs to the end,
// and Stop bounds how long shutdown waits for it.
func (r *Runner) Start(ctx context.Context) error {
	tickCtx := context.WithoutCancel(ctx)

	id, err := r.cron.AddFunc(fmt.Sprintf("@every %s", r.period), func() {
		r.tick(tickCtx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dispatch tick: %w", err)
	}

	r.entry = id
	r.cron.Start()

	slog.InfoContext(ctx, "dispatch runner started",
		"period", r.period.String(),
	)

	return nil
}

// Stop prevents new ticks and waits for the in-flight tick, if any, until
// ctx is done.
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop()

	select {
	case <-done.Done():
		slog.InfoContext(ctx, "dispatch runner stopped")

		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight tick: %w", ctx.Err())
	}
}

// NextRun reports when the next tick is due, or the zero time before Start.
func (r *Runner) NextRun() time.Time {
	return r.cron.Entry(r.entry).Next
}

func (r *Runner) tick(parent context.Context) {
	ctx := logging.WithRequestID(parent, logging.ValidateAndExtractRequestID(""))

	report, err := r.dispatch.RunTick(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "dispatch tick failed",
			"error", err,
		)

		return
	}

	slog.DebugContext(ctx, "dispatch tick completed",
		"eligible", report.Eligible,
		"notified", report.Notified,
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)
}
