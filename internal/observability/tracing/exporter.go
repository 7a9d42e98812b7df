package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type ExporterConfig struct {
	// Kind is one of none, stdout or otlp.
	Kind     string
	Endpoint string
	Insecure bool
}

// NewExportingProvider builds a provider that batches finished spans to the
// exporter selected by exp. With none, spans are sampled for propagation
// but never leave the process.
func NewExportingProvider(ctx context.Context, cfg Config, exp ExporterConfig) (*Provider, error) {
	switch exp.Kind {
	case "", "none":
		return NewProvider(cfg), nil

	case "stdout":
		exporter, err := stdouttrace.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}

		return NewProvider(cfg, sdktrace.WithBatcher(exporter)), nil

	case "otlp":
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(exp.Endpoint)}
		if exp.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}

		exporter, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp trace exporter: %w", err)
		}

		return NewProvider(cfg, sdktrace.WithBatcher(exporter)), nil

	default:
		return nil, fmt.Errorf("unknown traces exporter %q", exp.Kind)
	}
}
