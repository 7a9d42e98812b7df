package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/observability/tracing"
)

func TestNewExportingProviderSuccess(t *testing.T) {
	tests := []struct {
		name string
		kind string
	}{
		{name: "none", kind: "none"},
		{name: "stdout", kind: "stdout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := tracing.NewExportingProvider(context.Background(),
				tracing.Config{ServiceName: "test"},
				tracing.ExporterConfig{Kind: tt.kind})
			require.NoError(t, err)

			_, span := provider.Tracer("test").Start(context.Background(), "tick")
			assert.True(t, span.SpanContext().IsValid())
			span.End()

			assert.NoError(t, provider.Shutdown(context.Background()))
		})
	}
}

func TestNewExportingProviderError(t *testing.T) {
	provider, err := tracing.NewExportingProvider(context.Background(),
		tracing.Config{ServiceName: "test"},
		tracing.ExporterConfig{Kind: "jaeger"})

	assert.Error(t, err)
	assert.Nil(t, provider)
}
