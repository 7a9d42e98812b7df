package domain

import (
	"github.com/google/uuid"
)

// OwnerID references a user managed by the authentication subsystem.
// Any non-nil UUID is accepted since ids are issued externally.
type OwnerID struct {
	value uuid.UUID
}

func OwnerIDFromString(s string) (OwnerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OwnerID{}, ErrInvalidOwnerID
	}

	return OwnerIDFromUUID(id)
}

func OwnerIDFromUUID(id uuid.UUID) (OwnerID, error) {
	if id == uuid.Nil {
		return OwnerID{}, ErrInvalidOwnerID
	}

	return OwnerID{value: id}, nil
}

func (o OwnerID) String() string {
	return o.value.String()
}

func (o OwnerID) UUID() uuid.UUID {
	return o.value
}

func (o OwnerID) IsZero() bool {
	return o.value == uuid.Nil
}

func (o OwnerID) Equals(other OwnerID) bool {
	return o.value == other.value
}
