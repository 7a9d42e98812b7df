package domain

import (
	"github.com/google/uuid"
)

type OccurrenceID struct {
	value uuid.UUID
}

func NewOccurrenceID() OccurrenceID {
	return OccurrenceID{value: uuid.Must(uuid.NewV7())}
}

func OccurrenceIDFromString(s string) (OccurrenceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OccurrenceID{}, ErrInvalidOccurrenceID
	}

	return OccurrenceID{value: id}, nil
}

func OccurrenceIDFromUUID(id uuid.UUID) OccurrenceID {
	return OccurrenceID{value: id}
}

func (i OccurrenceID) String() string {
	return i.value.String()
}

func (i OccurrenceID) UUID() uuid.UUID {
	return i.value
}

func (i OccurrenceID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i OccurrenceID) Equals(other OccurrenceID) bool {
	return i.value == other.value
}
