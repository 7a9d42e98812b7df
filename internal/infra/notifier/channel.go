package notifier

import (
	"context"
	"time"

	"github.com/charlinto/MedRemApp/internal/domain"
)

//go:generate mockgen -source=channel.go -destination=channel_mock.go -package=notifier

// Reminder is the content every channel renders into its own message format.
type Reminder struct {
	OccurrenceID   string
	MedicationName string
	Dosage         string
	ScheduledTime  time.Time
}

type Channel interface {
	Name() string
	// Destination returns the owner's address on this channel, or false when
	// the owner cannot be reached through it.
	Destination(owner *domain.Owner) (string, bool)
	Send(ctx context.Context, destination string, reminder Reminder) error
}
