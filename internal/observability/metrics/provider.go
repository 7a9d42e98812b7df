package metrics

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

type Provider struct {
	mp      *sdkmetric.MeterProvider
	handler http.Handler
}

// NewProvider builds a meter provider around the readers in opts. Production
// code goes through NewExportingProvider; tests pass a manual reader.
func NewProvider(cfg Config, opts ...sdkmetric.Option) *Provider {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
		attribute.String("deployment.environment.name", cfg.Environment),
	)

	opts = append([]sdkmetric.Option{sdkmetric.WithResource(res)}, opts...)

	return &Provider{mp: sdkmetric.NewMeterProvider(opts...)}
}

func (p *Provider) Install() {
	otel.SetMeterProvider(p.mp)
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.mp.Meter(name)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

// Handler serves the scrape endpoint when the provider exports to
// Prometheus, and is nil otherwise.
func (p *Provider) Handler() http.Handler {
	return p.handler
}
