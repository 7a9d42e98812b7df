package notifier

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/charlinto/MedRemApp/internal/domain"
)

const ChannelPush = "push"

type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type PushConfig struct {
	CredentialsFile string
	ProjectID       string
}

type PushChannel struct {
	client MessagingClient
}

func NewPushChannel(ctx context.Context, cfg PushConfig) (*PushChannel, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	fbApp, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := fbApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	slog.Info("push channel configured",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewPushChannelWithClient(client), nil
}

func NewPushChannelWithClient(client MessagingClient) *PushChannel {
	return &PushChannel{client: client}
}

func (c *PushChannel) Name() string {
	return ChannelPush
}

func (c *PushChannel) Destination(owner *domain.Owner) (string, bool) {
	if owner == nil || !owner.HasDeviceToken() {
		return "", false
	}

	return owner.DeviceToken(), true
}

func (c *PushChannel) Send(ctx context.Context, destination string, reminder Reminder) error {
	title, body := PushContent(reminder)

	messageID, err := c.client.Send(ctx, &messaging.Message{
		Token: destination,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"occurrence_id": reminder.OccurrenceID,
		},
	})
	if err != nil {
		reason := "fcm delivery failed"
		if messaging.IsUnregistered(err) {
			reason = "device token unregistered"
		}

		return newTransportError(ChannelPush, reason, err)
	}

	slog.DebugContext(ctx, "push reminder sent",
		slog.String("occurrence_id", reminder.OccurrenceID),
		slog.String("message_id", messageID),
	)

	return nil
}
