package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/observability/metrics"
)

func TestNewExportingProviderSuccess(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		wantHandler bool
	}{
		{name: "empty kind records nothing", kind: "", wantHandler: false},
		{name: "none", kind: "none", wantHandler: false},
		{name: "prometheus exposes a scrape handler", kind: "prometheus", wantHandler: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := metrics.NewExportingProvider(context.Background(),
				metrics.Config{ServiceName: "test"},
				metrics.ExporterConfig{Kind: tt.kind, Interval: time.Minute})
			require.NoError(t, err)
			t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

			assert.Equal(t, tt.wantHandler, provider.Handler() != nil)
		})
	}
}

func TestPrometheusHandlerServesDispatchMetrics(t *testing.T) {
	provider, err := metrics.NewExportingProvider(context.Background(),
		metrics.Config{ServiceName: "test"},
		metrics.ExporterConfig{Kind: "prometheus"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := metrics.NewDispatchMetrics(provider.Meter("dispatch"))
	require.NoError(t, err)

	m.RecordTick(context.Background(), false, 5*time.Millisecond)
	m.RecordOccurrence(context.Background(), "notified")

	rec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reminder_dispatch_ticks")
	assert.Contains(t, rec.Body.String(), "reminder_dispatch_occurrences")
}

func TestNewExportingProviderError(t *testing.T) {
	provider, err := metrics.NewExportingProvider(context.Background(),
		metrics.Config{ServiceName: "test"},
		metrics.ExporterConfig{Kind: "carrier-pigeon"})

	assert.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
