package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/charlinto/MedRemApp/internal/domain"
)

func TestDelivery(t *testing.T) {
	at := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		delivery      domain.Delivery
		wantStatus    domain.DeliveryStatus
		wantReason    string
		wantSucceeded bool
	}{
		{
			name:          "sent",
			delivery:      domain.SentDelivery("email", at),
			wantStatus:    domain.DeliverySent,
			wantSucceeded: true,
		},
		{
			name:          "failed",
			delivery:      domain.FailedDelivery("push", "fcm delivery failed", at),
			wantStatus:    domain.DeliveryFailed,
			wantReason:    "fcm delivery failed",
			wantSucceeded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.delivery.Status)
			assert.Equal(t, tt.wantReason, tt.delivery.Reason)
			assert.Equal(t, tt.wantSucceeded, tt.delivery.Succeeded())
			assert.True(t, at.Equal(tt.delivery.AttemptedAt))
		})
	}
}
