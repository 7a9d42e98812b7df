package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/charlinto/MedRemApp/internal/observability/tracing"
)

type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

type NATSPublisherConfig struct {
	URL   string
	Topic string
}

func NewWatermillPublisher(publisher message.Publisher, topic string) *WatermillPublisher {
	if topic == "" {
		topic = TopicReminderDispatched
	}

	return &WatermillPublisher{
		publisher: publisher,
		topic:     topic,
	}
}

// NewNATSPublisher provisions the JetStream stream for the topic and returns
// a publisher bound to it.
func NewNATSPublisher(ctx context.Context, cfg NATSPublisherConfig) (*WatermillPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	topic := cfg.Topic
	if topic == "" {
		topic = TopicReminderDispatched
	}

	if err := ensureStream(ctx, cfg.URL, topic); err != nil {
		return nil, err
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return NewWatermillPublisher(publisher, topic), nil
}

func ensureStream(ctx context.Context, url, topic string) error {
	conn, err := nc.Connect(url, nc.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := "REMINDER_EVENTS"

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Dispatch outcomes of medication reminders",
		Subjects:    []string{topic},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      7 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subject", topic),
	)

	return nil
}

func (p *WatermillPublisher) PublishReminderDispatched(ctx context.Context, event ReminderDispatchedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", EventTypeReminderDispatched)
	msg.Metadata.Set("occurrence_id", event.OccurrenceID)
	msg.Metadata.Set("owner_id", event.OwnerID)

	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish reminder dispatched event",
			slog.String("occurrence_id", event.OccurrenceID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published reminder dispatched event",
		slog.String("occurrence_id", event.OccurrenceID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}
