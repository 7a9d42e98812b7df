package domain

import (
	"github.com/google/uuid"
)

type ScheduleID struct {
	value uuid.UUID
}

func NewScheduleID() ScheduleID {
	return ScheduleID{value: uuid.Must(uuid.NewV7())}
}

func ScheduleIDFromString(s string) (ScheduleID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ScheduleID{}, ErrInvalidScheduleID
	}

	return ScheduleID{value: id}, nil
}

func ScheduleIDFromUUID(id uuid.UUID) ScheduleID {
	return ScheduleID{value: id}
}

func (i ScheduleID) String() string {
	return i.value.String()
}

func (i ScheduleID) UUID() uuid.UUID {
	return i.value
}

func (i ScheduleID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i ScheduleID) Equals(other ScheduleID) bool {
	return i.value == other.value
}
