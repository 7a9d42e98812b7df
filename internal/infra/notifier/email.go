package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/charlinto/MedRemApp/internal/domain"
)

const ChannelEmail = "email"

type MailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type EmailChannel struct {
	sender MailSender
	from   string
}

func NewEmailChannel(cfg EmailConfig) (*EmailChannel, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	slog.Info("email channel configured",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return NewEmailChannelWithSender(client, cfg.From), nil
}

func NewEmailChannelWithSender(sender MailSender, from string) *EmailChannel {
	return &EmailChannel{
		sender: sender,
		from:   from,
	}
}

func (c *EmailChannel) Name() string {
	return ChannelEmail
}

func (c *EmailChannel) Destination(owner *domain.Owner) (string, bool) {
	if owner == nil || !owner.HasAddress() {
		return "", false
	}

	return owner.Email(), true
}

func (c *EmailChannel) Send(ctx context.Context, destination string, reminder Reminder) error {
	subject, body := EmailContent(reminder)

	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return newTransportError(ChannelEmail, "invalid sender address", err)
	}

	if err := msg.To(destination); err != nil {
		return newTransportError(ChannelEmail, "invalid recipient address", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := c.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return newTransportError(ChannelEmail, "smtp delivery failed", err)
	}

	slog.DebugContext(ctx, "email reminder sent",
		slog.String("occurrence_id", reminder.OccurrenceID),
	)

	return nil
}
