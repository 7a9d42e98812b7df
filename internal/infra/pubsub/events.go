package pubsub

import "time"

const (
	TopicReminderDispatched = "reminder.dispatched"

	EventTypeReminderDispatched = "reminder.dispatched"
)

type ReminderDispatchedEvent struct {
	OccurrenceID  string           `json:"occurrence_id"`
	OwnerID       string           `json:"owner_id"`
	ScheduleID    string           `json:"schedule_id"`
	ScheduledTime time.Time        `json:"scheduled_time"`
	DispatchedAt  time.Time        `json:"dispatched_at"`
	Channels      []ChannelOutcome `json:"channels"`
}

type ChannelOutcome struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}
