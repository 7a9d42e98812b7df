package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishReminderDispatched(ctx context.Context, event ReminderDispatchedEvent) error
	io.Closer
}
