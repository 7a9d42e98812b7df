package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type ownerUseCaseImpl struct {
	owners domain.OwnerRepository
}

func NewOwnerUseCase(owners domain.OwnerRepository) OwnerUseCase {
	return &ownerUseCaseImpl{
		owners: owners,
	}
}

func (uc *ownerUseCaseImpl) RegisterContact(ctx context.Context, input RegisterContactInput) (ContactOutput, error) {
	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return ContactOutput{}, NewValidationError("owner_id", err.Error())
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return ContactOutput{}, NewValidationError("email", "email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ContactOutput{}, NewValidationError("email", "email must be a plain address")
	}

	owner, err := domain.NewOwner(ownerID, email, input.DeviceToken)
	if err != nil {
		return ContactOutput{}, NewValidationError("owner_id", err.Error())
	}

	if err := uc.owners.Save(ctx, owner); err != nil {
		slog.ErrorContext(ctx, "failed to save owner contact",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return ContactOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "owner contact registered",
		"owner_id", input.OwnerID,
		"has_device_token", owner.HasDeviceToken(),
	)

	return ContactFromEntity(owner), nil
}

func (uc *ownerUseCaseImpl) GetContact(ctx context.Context, input GetContactInput) (ContactOutput, error) {
	ownerID, err := domain.OwnerIDFromString(input.OwnerID)
	if err != nil {
		return ContactOutput{}, NewValidationError("owner_id", err.Error())
	}

	owner, err := uc.owners.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return ContactOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load owner contact",
			"error", err,
			"owner_id", input.OwnerID,
		)

		return ContactOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return ContactFromEntity(owner), nil
}
