package domain

import (
	"context"
)

//go:generate mockgen -source=owner_repository.go -destination=owner_repository_mock.go -package=domain

type OwnerRepository interface {
	// Save inserts the owner or replaces its contact details.
	Save(ctx context.Context, owner *Owner) error
	FindByID(ctx context.Context, id OwnerID) (*Owner, error)
}
