package app

import (
	"context"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type RegisterContactInput struct {
	OwnerID     string
	Email       string
	DeviceToken string
}

type GetContactInput struct {
	OwnerID string
}

type ContactOutput struct {
	OwnerID     string
	Email       string
	DeviceToken string
}

func ContactFromEntity(o *domain.Owner) ContactOutput {
	return ContactOutput{
		OwnerID:     o.ID().String(),
		Email:       o.Email(),
		DeviceToken: o.DeviceToken(),
	}
}

// OwnerUseCase maintains the contact details the dispatch loop delivers to.
type OwnerUseCase interface {
	RegisterContact(ctx context.Context, input RegisterContactInput) (ContactOutput, error)
	GetContact(ctx context.Context, input GetContactInput) (ContactOutput, error)
}
