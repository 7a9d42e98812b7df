package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/charlinto/MedRemApp/internal/domain"
	"github.com/charlinto/MedRemApp/internal/infra/notifier"
	"github.com/charlinto/MedRemApp/internal/infra/pubsub"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
	"github.com/charlinto/MedRemApp/internal/observability/metrics"
)

const dispatchTracerName = "github.com/charlinto/MedRemApp/internal/app/dispatch"

type DispatchOptions struct {
	Lookahead   time.Duration
	Concurrency int
	BatchSize   int
	// Location is used to render the scheduled time in messages.
	Location *time.Location
}

type dispatchUseCaseImpl struct {
	occurrences domain.OccurrenceRepository
	channels    []notifier.Channel
	publisher   pubsub.Publisher
	metrics     *metrics.DispatchMetrics
	opts        DispatchOptions
	tracer      trace.Tracer
	now         func() time.Time
}

// NewDispatchUseCase builds the dispatch loop. publisher and dispatchMetrics
// may be nil.
func NewDispatchUseCase(
	occurrences domain.OccurrenceRepository,
	channels []notifier.Channel,
	publisher pubsub.Publisher,
	dispatchMetrics *metrics.DispatchMetrics,
	opts DispatchOptions,
	now func() time.Time,
) DispatchUseCase {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	if opts.Location == nil {
		opts.Location = time.Local
	}

	if now == nil {
		now = time.Now
	}

	return &dispatchUseCaseImpl{
		occurrences: occurrences,
		channels:    channels,
		publisher:   publisher,
		metrics:     dispatchMetrics,
		opts:        opts,
		tracer:      otel.Tracer(dispatchTracerName),
		now:         now,
	}
}

func (uc *dispatchUseCaseImpl) RunTick(ctx context.Context) (DispatchReport, error) {
	ctx = logging.WithModule(ctx, logging.ModuleDispatch)

	ctx, span := uc.tracer.Start(ctx, "dispatch.tick")
	defer span.End()

	startedAt := uc.now()
	report := DispatchReport{StartedAt: startedAt}

	until := startedAt.Add(uc.opts.Lookahead)

	due, err := uc.occurrences.FindEligible(ctx, until, uc.opts.BatchSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query eligible occurrences",
			"error", err,
			"until", until,
		)

		span.RecordError(err)
		span.SetStatus(codes.Error, "eligible query failed")
		uc.metrics.RecordTick(ctx, true, time.Since(startedAt))

		report.FinishedAt = uc.now()

		return report, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	report.Eligible = len(due)
	report.Occurrences = make([]OccurrenceReport, len(due))

	var g errgroup.Group
	g.SetLimit(uc.opts.Concurrency)

	for i, d := range due {
		g.Go(func() error {
			report.Occurrences[i] = uc.dispatchOne(ctx, d)

			return nil
		})
	}

	_ = g.Wait()

	report.tally()
	report.FinishedAt = uc.now()

	span.SetAttributes(
		attribute.Int("dispatch.eligible", report.Eligible),
		attribute.Int("dispatch.notified", report.Notified),
		attribute.Int("dispatch.skipped", report.Skipped),
		attribute.Int("dispatch.failed", report.Failed),
	)
	uc.metrics.RecordTick(ctx, false, time.Since(startedAt))

	if report.Eligible > 0 {
		slog.InfoContext(ctx, "dispatch tick finished",
			"eligible", report.Eligible,
			"notified", report.Notified,
			"skipped", report.Skipped,
			"failed", report.Failed,
		)
	}

	return report, nil
}

func (uc *dispatchUseCaseImpl) dispatchOne(ctx context.Context, due domain.DueOccurrence) OccurrenceReport {
	occurrence := due.Occurrence

	report := OccurrenceReport{
		OccurrenceID:  occurrence.ID().String(),
		ScheduleID:    occurrence.ScheduleID().String(),
		OwnerID:       occurrence.OwnerID().String(),
		ScheduledTime: occurrence.ScheduledTime(),
	}

	if err := checkReferences(due); err != nil {
		slog.WarnContext(ctx, "skipping occurrence with missing references",
			"occurrence_id", report.OccurrenceID,
			"schedule_id", report.ScheduleID,
			"error", err,
		)

		report.Outcome = OutcomeSkippedReferential
		report.Reason = err.Error()
		uc.metrics.RecordOccurrence(ctx, report.Outcome)

		// Keeps it out of later batches.
		if err := uc.occurrences.MarkSkipped(ctx, occurrence.ID(), report.Reason); err != nil {
			slog.ErrorContext(ctx, "failed to mark occurrence skipped",
				"occurrence_id", report.OccurrenceID,
				"error", err,
			)
		}

		return report
	}

	claimed, err := uc.occurrences.Claim(ctx, occurrence.ID())
	if err != nil {
		slog.ErrorContext(ctx, "failed to claim occurrence",
			"occurrence_id", report.OccurrenceID,
			"error", err,
		)

		report.Outcome = OutcomeClaimFailed
		report.Reason = err.Error()
		uc.metrics.RecordOccurrence(ctx, report.Outcome)

		return report
	}

	if !claimed {
		slog.DebugContext(ctx, "occurrence already claimed",
			"occurrence_id", report.OccurrenceID,
		)

		report.Outcome = OutcomeAlreadyClaimed
		uc.metrics.RecordOccurrence(ctx, report.Outcome)

		return report
	}

	reminder := notifier.Reminder{
		OccurrenceID:   report.OccurrenceID,
		MedicationName: due.Schedule.Name(),
		Dosage:         due.Schedule.Dosage(),
		ScheduledTime:  occurrence.ScheduledTime().In(uc.opts.Location),
	}

	deliveries := uc.deliver(ctx, due.Owner, reminder)

	if err := uc.occurrences.RecordDeliveries(ctx, occurrence.ID(), deliveries); err != nil {
		slog.ErrorContext(ctx, "failed to record deliveries",
			"occurrence_id", report.OccurrenceID,
			"error", err,
		)
	}

	report.Outcome = OutcomeNotified
	report.Channels = make([]ChannelResult, 0, len(deliveries))

	for _, d := range deliveries {
		report.Channels = append(report.Channels, ChannelResult{
			Channel: d.Channel,
			Status:  string(d.Status),
			Reason:  d.Reason,
		})
	}

	uc.metrics.RecordOccurrence(ctx, report.Outcome)
	uc.publish(ctx, report)

	return report
}

// deliver attempts every channel the owner is reachable on. A failing
// channel never prevents the others from being attempted.
func (uc *dispatchUseCaseImpl) deliver(ctx context.Context, owner *domain.Owner, reminder notifier.Reminder) []domain.Delivery {
	deliveries := make([]domain.Delivery, 0, len(uc.channels))

	for _, ch := range uc.channels {
		destination, ok := ch.Destination(owner)
		if !ok {
			continue
		}

		err := ch.Send(ctx, destination, reminder)
		attemptedAt := uc.now()

		if err != nil {
			reason := notifier.FailureReason(err)

			slog.WarnContext(ctx, "reminder delivery failed",
				"occurrence_id", reminder.OccurrenceID,
				"channel", ch.Name(),
				"reason", reason,
				"error", err,
			)

			deliveries = append(deliveries, domain.FailedDelivery(ch.Name(), reason, attemptedAt))
			uc.metrics.RecordDelivery(ctx, ch.Name(), string(domain.DeliveryFailed))

			continue
		}

		slog.DebugContext(ctx, "reminder delivered",
			"occurrence_id", reminder.OccurrenceID,
			"channel", ch.Name(),
		)

		deliveries = append(deliveries, domain.SentDelivery(ch.Name(), attemptedAt))
		uc.metrics.RecordDelivery(ctx, ch.Name(), string(domain.DeliverySent))
	}

	return deliveries
}

func (uc *dispatchUseCaseImpl) publish(ctx context.Context, report OccurrenceReport) {
	if uc.publisher == nil {
		return
	}

	channels := make([]pubsub.ChannelOutcome, 0, len(report.Channels))
	for _, c := range report.Channels {
		channels = append(channels, pubsub.ChannelOutcome{
			Channel: c.Channel,
			Status:  c.Status,
			Reason:  c.Reason,
		})
	}

	event := pubsub.ReminderDispatchedEvent{
		OccurrenceID:  report.OccurrenceID,
		OwnerID:       report.OwnerID,
		ScheduleID:    report.ScheduleID,
		ScheduledTime: report.ScheduledTime,
		DispatchedAt:  uc.now(),
		Channels:      channels,
	}

	if err := uc.publisher.PublishReminderDispatched(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish reminder dispatched event",
			"occurrence_id", report.OccurrenceID,
			"error", err,
		)
	}
}

func checkReferences(due domain.DueOccurrence) error {
	id := due.Occurrence.ID().String()

	switch {
	case due.Schedule == nil:
		return &ReferentialError{OccurrenceID: id, Missing: "schedule"}
	case due.Owner == nil:
		return &ReferentialError{OccurrenceID: id, Missing: "owner"}
	case !due.Owner.HasAddress():
		return &ReferentialError{OccurrenceID: id, Missing: "address"}
	}

	return nil
}
