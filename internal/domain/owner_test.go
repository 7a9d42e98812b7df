package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/domain"
)

func TestNewOwner(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		deviceToken   string
		wantAddress   bool
		wantPushToken bool
	}{
		{name: "both channels", email: "a@example.com", deviceToken: "fcm-token", wantAddress: true, wantPushToken: true},
		{name: "email only", email: " a@example.com ", deviceToken: "", wantAddress: true, wantPushToken: false},
		{name: "push only", email: "", deviceToken: "fcm-token", wantAddress: false, wantPushToken: true},
		{name: "no channels", email: "  ", deviceToken: "", wantAddress: false, wantPushToken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := createValidOwnerID(t)

			o, err := domain.NewOwner(id, tt.email, tt.deviceToken)

			require.NoError(t, err)
			assert.True(t, o.ID().Equals(id))
			assert.Equal(t, tt.wantAddress, o.HasAddress())
			assert.Equal(t, tt.wantPushToken, o.HasDeviceToken())
		})
	}
}

func TestNewOwnerTrimsEmail(t *testing.T) {
	o, err := domain.NewOwner(createValidOwnerID(t), " a@example.com ", "")

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", o.Email())
}

func TestNewOwnerError(t *testing.T) {
	_, err := domain.NewOwner(domain.OwnerID{}, "a@example.com", "")

	assert.ErrorIs(t, err, domain.ErrInvalidOwnerID)
}
