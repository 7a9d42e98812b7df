package domain

import "time"

type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// Delivery is the outcome of one channel attempt for an occurrence.
type Delivery struct {
	Channel     string
	Status      DeliveryStatus
	Reason      string
	AttemptedAt time.Time
}

func SentDelivery(channel string, at time.Time) Delivery {
	return Delivery{
		Channel:     channel,
		Status:      DeliverySent,
		AttemptedAt: at,
	}
}

func FailedDelivery(channel, reason string, at time.Time) Delivery {
	return Delivery{
		Channel:     channel,
		Status:      DeliveryFailed,
		Reason:      reason,
		AttemptedAt: at,
	}
}

func (d Delivery) Succeeded() bool {
	return d.Status == DeliverySent
}
