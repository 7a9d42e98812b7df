package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type ExporterConfig struct {
	// Kind is one of none, stdout, otlp or prometheus.
	Kind     string
	Endpoint string
	Insecure bool
	// Interval is the push period for stdout and otlp.
	Interval time.Duration
}

// NewExportingProvider builds a provider whose instruments reach the
// exporter selected by exp.
func NewExportingProvider(ctx context.Context, cfg Config, exp ExporterConfig) (*Provider, error) {
	switch exp.Kind {
	case "", "none":
		return NewProvider(cfg), nil

	case "stdout":
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}

		return NewProvider(cfg, periodic(exporter, exp.Interval)), nil

	case "otlp":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(exp.Endpoint)}
		if exp.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}

		exporter, err := otlpmetricgrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp metric exporter: %w", err)
		}

		return NewProvider(cfg, periodic(exporter, exp.Interval)), nil

	case "prometheus":
		registry := prometheus.NewRegistry()

		exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
		if err != nil {
			return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
		}

		p := NewProvider(cfg, sdkmetric.WithReader(exporter))
		p.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

		return p, nil

	default:
		return nil, fmt.Errorf("unknown metrics exporter %q", exp.Kind)
	}
}

func periodic(exporter sdkmetric.Exporter, interval time.Duration) sdkmetric.Option {
	return sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)))
}
