package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type DispatchMetrics struct {
	ticks        metric.Int64Counter
	tickDuration metric.Float64Histogram
	occurrences  metric.Int64Counter
	deliveries   metric.Int64Counter
}

func NewDispatchMetrics(meter metric.Meter) (*DispatchMetrics, error) {
	ticks, err := meter.Int64Counter("reminder.dispatch.ticks",
		metric.WithDescription("Number of dispatch ticks run"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tick counter: %w", err)
	}

	tickDuration, err := meter.Float64Histogram("reminder.dispatch.tick.duration",
		metric.WithDescription("Duration of dispatch ticks"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tick duration histogram: %w", err)
	}

	occurrences, err := meter.Int64Counter("reminder.dispatch.occurrences",
		metric.WithDescription("Eligible occurrences by dispatch outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create occurrence counter: %w", err)
	}

	deliveries, err := meter.Int64Counter("reminder.dispatch.deliveries",
		metric.WithDescription("Channel delivery attempts by channel and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery counter: %w", err)
	}

	return &DispatchMetrics{
		ticks:        ticks,
		tickDuration: tickDuration,
		occurrences:  occurrences,
		deliveries:   deliveries,
	}, nil
}

func (m *DispatchMetrics) RecordTick(ctx context.Context, failed bool, d time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("failed", failed))

	m.ticks.Add(ctx, 1, attrs)
	m.tickDuration.Record(ctx, d.Seconds(), attrs)
}

func (m *DispatchMetrics) RecordOccurrence(ctx context.Context, outcome string) {
	if m == nil {
		return
	}

	m.occurrences.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *DispatchMetrics) RecordDelivery(ctx context.Context, channel, status string) {
	if m == nil {
		return
	}

	m.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("status", status),
	))
}
