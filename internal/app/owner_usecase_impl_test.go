package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/charlinto/MedRemApp/internal/app"
	"github.com/charlinto/MedRemApp/internal/domain"
)

func TestRegisterContactSuccess(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		deviceToken string
	}{
		{
			name:        "email and device token",
			email:       "pat@example.com",
			deviceToken: "fcm-token",
		},
		{
			name:  "email only",
			email: " pat@example.com ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			owners := domain.NewMockOwnerRepository(ctrl)
			owners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

			ownerID := generateUUIDv7String()

			output, err := app.NewOwnerUseCase(owners).RegisterContact(context.Background(), app.RegisterContactInput{
				OwnerID:     ownerID,
				Email:       tt.email,
				DeviceToken: tt.deviceToken,
			})

			require.NoError(t, err)
			assert.Equal(t, ownerID, output.OwnerID)
			assert.Equal(t, "pat@example.com", output.Email)
			assert.Equal(t, tt.deviceToken, output.DeviceToken)
		})
	}
}

func TestRegisterContactError(t *testing.T) {
	tests := []struct {
		name     string
		input    app.RegisterContactInput
		saveErr  error
		expected error
	}{
		{
			name:     "missing email",
			input:    app.RegisterContactInput{OwnerID: generateUUIDv7String()},
			expected: app.ErrValidation,
		},
		{
			name:     "display name instead of plain address",
			input:    app.RegisterContactInput{OwnerID: generateUUIDv7String(), Email: "Pat <pat@example.com>"},
			expected: app.ErrValidation,
		},
		{
			name:     "malformed email",
			input:    app.RegisterContactInput{OwnerID: generateUUIDv7String(), Email: "pat.example.com"},
			expected: app.ErrValidation,
		},
		{
			name:     "invalid owner",
			input:    app.RegisterContactInput{OwnerID: "nope", Email: "pat@example.com"},
			expected: app.ErrValidation,
		},
		{
			name:     "store failure",
			input:    app.RegisterContactInput{OwnerID: generateUUIDv7String(), Email: "pat@example.com"},
			saveErr:  errors.New("connection reset"),
			expected: app.ErrInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			owners := domain.NewMockOwnerRepository(ctrl)
			if tt.saveErr != nil {
				owners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tt.saveErr)
			}

			_, err := app.NewOwnerUseCase(owners).RegisterContact(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestGetContactError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owners := domain.NewMockOwnerRepository(ctrl)
	owners.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrOwnerNotFound)

	_, err := app.NewOwnerUseCase(owners).GetContact(context.Background(), app.GetContactInput{
		OwnerID: generateUUIDv7String(),
	})

	assert.ErrorIs(t, err, app.ErrNotFound)
}
