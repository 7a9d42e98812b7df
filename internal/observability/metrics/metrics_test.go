package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/charlinto/MedRemApp/internal/observability/metrics"
)

func newTestProvider(t *testing.T) (*metrics.Provider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := metrics.NewProvider(metrics.Config{ServiceName: "test"}, sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, reader
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}

	return sums
}

func TestDispatchMetricsRecord(t *testing.T) {
	provider, reader := newTestProvider(t)

	m, err := metrics.NewDispatchMetrics(provider.Meter("dispatch"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordTick(ctx, false, 20*time.Millisecond)
	m.RecordOccurrence(ctx, "notified")
	m.RecordOccurrence(ctx, "already_claimed")
	m.RecordDelivery(ctx, "email", "sent")
	m.RecordDelivery(ctx, "push", "failed")
	m.RecordDelivery(ctx, "email", "sent")

	sums := collectSums(t, reader)
	assert.Equal(t, int64(1), sums["reminder.dispatch.ticks"])
	assert.Equal(t, int64(2), sums["reminder.dispatch.occurrences"])
	assert.Equal(t, int64(3), sums["reminder.dispatch.deliveries"])
}

func TestHTTPMetricsRecord(t *testing.T) {
	provider, reader := newTestProvider(t)

	m, err := metrics.NewHTTPMetrics(provider.Meter("http"))
	require.NoError(t, err)

	m.Record(context.Background(), "GET", "/api/v1/schedules", 200, 5*time.Millisecond)
	m.Record(context.Background(), "POST", "/api/v1/schedules", 400, time.Millisecond)

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["http.server.requests"])
}

func TestNilMetricsAreNoop(t *testing.T) {
	var dispatch *metrics.DispatchMetrics
	var http *metrics.HTTPMetrics

	assert.NotPanics(t, func() {
		dispatch.RecordTick(context.Background(), true, time.Second)
		dispatch.RecordOccurrence(context.Background(), "notified")
		dispatch.RecordDelivery(context.Background(), "email", "sent")
		http.Record(context.Background(), "GET", "/", 200, time.Second)
	})
}
