package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/app"
	"github.com/charlinto/MedRemApp/internal/infra/scheduler"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
)

type fakeDispatch struct {
	calls     atomic.Int32
	started   chan struct{}
	release   chan struct{}
	err       error
	requestID atomic.Value
	module    atomic.Value
	tickErr   atomic.Value
}

func (f *fakeDispatch) RunTick(ctx context.Context) (app.DispatchReport, error) {
	f.calls.Add(1)
	f.requestID.Store(logging.RequestIDFromContext(ctx))

	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}

	if f.release != nil {
		<-f.release
	}

	f.module.Store(logging.ModuleFromContext(ctx))

	if err := ctx.Err(); err != nil {
		f.tickErr.Store(err)
	}

	return app.DispatchReport{}, f.err
}

func TestNewRunnerError(t *testing.T) {
	tests := []struct {
		name   string
		period time.Duration
	}{
		{name: "zero period", period: 0},
		{name: "negative period", period: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduler.NewRunner(&fakeDispatch{}, tt.period)

			assert.ErrorIs(t, err, scheduler.ErrInvalidPeriod)
		})
	}
}

func TestRunnerTicksSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	tests := []struct {
		name string
		err  error
	}{
		{name: "successful ticks"},
		{name: "failing ticks keep the runner alive", err: errors.New("store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatch := &fakeDispatch{err: tt.err}

			runner, err := scheduler.NewRunner(dispatch, time.Second)
			require.NoError(t, err)
			assert.True(t, runner.NextRun().IsZero())

			require.NoError(t, runner.Start(context.Background()))
			assert.False(t, runner.NextRun().IsZero())

			assert.Eventually(t, func() bool {
				return dispatch.calls.Load() >= 2
			}, 5*time.Second, 50*time.Millisecond)

			require.NoError(t, runner.Stop(context.Background()))

			requestID, _ := dispatch.requestID.Load().(string)
			assert.NotEmpty(t, requestID)
		})
	}
}

func TestRunnerStopWaitsForInFlightTick(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	dispatch := &fakeDispatch{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}

	runner, err := scheduler.NewRunner(dispatch, time.Second)
	require.NoError(t, err)
	require.NoError(t, runner.Start(context.Background()))

	select {
	case <-dispatch.started:
	case <-time.After(5 * time.Second):
		t.Fatal("tick did not start")
	}

	timeout, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = runner.Stop(timeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	stopped := make(chan error, 1)

	go func() {
		stopped <- runner.Stop(context.Background())
	}()

	close(dispatch.release)

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after the tick finished")
	}

	assert.Equal(t, int32(1), dispatch.calls.Load(), "no tick runs after stop")
}

func TestRunnerTickOutlivesParentCancelSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	dispatch := &fakeDispatch{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}

	runner, err := scheduler.NewRunner(dispatch, time.Second)
	require.NoError(t, err)

	parent, cancel := context.WithCancel(logging.WithModule(context.Background(), logging.ModuleDispatch))
	require.NoError(t, runner.Start(parent))

	select {
	case <-dispatch.started:
	case <-time.After(5 * time.Second):
		t.Fatal("tick did not start")
	}

	cancel()
	close(dispatch.release)

	require.NoError(t, runner.Stop(context.Background()))

	assert.Nil(t, dispatch.tickErr.Load(), "in-flight tick must not see the parent's cancellation")
	assert.Equal(t, logging.ModuleDispatch, dispatch.module.Load())
}
