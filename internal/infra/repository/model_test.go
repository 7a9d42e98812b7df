package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/charlinto/MedRemApp/internal/domain"
	"github.com/charlinto/MedRemApp/internal/infra/repository"
)

func createValidOwnerID(t *testing.T) domain.OwnerID {
	t.Helper()

	id, err := domain.OwnerIDFromUUID(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	return id
}

func createSchedule(t *testing.T, ownerID domain.OwnerID, validFrom time.Time, validTo *time.Time) *domain.Schedule {
	t.Helper()

	morning, err := domain.ParseDoseRule("08:00", []string{"monday", "wednesday", "friday"})
	require.NoError(t, err)
	evening, err := domain.ParseDoseRule("20:30", []string{"sunday"})
	require.NoError(t, err)

	rules, err := domain.NewDoseRules([]domain.DoseRule{morning, evening})
	require.NoError(t, err)

	validity, err := domain.NewValidityWindow(validFrom, validTo)
	require.NoError(t, err)

	schedule, err := domain.NewSchedule(ownerID, "Aspirin", "100mg", rules, validity, "after meals")
	require.NoError(t, err)

	return schedule
}

func TestScheduleModelRoundTripSuccess(t *testing.T) {
	validFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	validTo := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name    string
		validTo *time.Time
	}{
		{
			name:    "open ended schedule",
			validTo: nil,
		},
		{
			name:    "bounded schedule",
			validTo: &validTo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := createSchedule(t, createValidOwnerID(t), validFrom, tt.validTo)

			m := repository.ScheduleFromEntity(schedule)

			assert.Equal(t, schedule.ID().String(), m.ID)
			require.Len(t, m.Rules, 2)
			assert.Equal(t, "08:00", m.Rules[0].TimeOfDay)
			assert.Equal(t, []string{"monday", "wednesday", "friday"}, m.Rules[0].Weekdays)
			assert.Equal(t, tt.validTo, m.ValidTo)

			restored, err := m.ToEntity()
			require.NoError(t, err)

			assert.Equal(t, schedule.ID(), restored.ID())
			assert.Equal(t, schedule.Name(), restored.Name())
			assert.Equal(t, schedule.Dosage(), restored.Dosage())
			assert.Equal(t, schedule.Notes(), restored.Notes())
			assert.Equal(t, schedule.Rules().Count(), restored.Rules().Count())

			for i, r := range schedule.Rules().ToSlice() {
				assert.True(t, r.Equals(restored.Rules().ToSlice()[i]))
			}

			assert.Equal(t, tt.validTo != nil, restored.Validity().HasEnd())
		})
	}
}

func TestScheduleModelToEntityError(t *testing.T) {
	valid := repository.ScheduleFromEntity(
		createSchedule(t, createValidOwnerID(t), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), nil),
	)

	tests := []struct {
		name   string
		mutate func(m *repository.ScheduleModel)
	}{
		{
			name: "invalid schedule ID",
			mutate: func(m *repository.ScheduleModel) {
				m.ID = "not-a-uuid"
			},
		},
		{
			name: "invalid owner ID",
			mutate: func(m *repository.ScheduleModel) {
				m.OwnerID = "not-a-uuid"
			},
		},
		{
			name: "invalid stored time of day",
			mutate: func(m *repository.ScheduleModel) {
				m.Rules = datatypes.NewJSONSlice([]repository.DoseRuleJSON{
					{TimeOfDay: "25:00", Weekdays: []string{"monday"}},
				})
			},
		},
		{
			name: "no stored rules",
			mutate: func(m *repository.ScheduleModel) {
				m.Rules = datatypes.NewJSONSlice([]repository.DoseRuleJSON{})
			},
		},
		{
			name: "valid to before valid from",
			mutate: func(m *repository.ScheduleModel) {
				before := m.ValidFrom.Add(-24 * time.Hour)
				m.ValidTo = &before
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := *valid
			tt.mutate(&m)

			_, err := m.ToEntity()

			assert.Error(t, err)
		})
	}
}

func TestOccurrenceModelRoundTripSuccess(t *testing.T) {
	ownerID := createValidOwnerID(t)
	scheduleID := domain.NewScheduleID()
	scheduledTime := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	takenAt := scheduledTime.Add(5 * time.Minute)

	completed := domain.NewOccurrence(ownerID, scheduleID, scheduledTime)
	require.NoError(t, completed.Resolve(domain.StatusCompleted, takenAt))

	tests := []struct {
		name        string
		occurrence  *domain.Occurrence
		wantStatus  domain.OccurrenceStatus
		wantTakenAt bool
	}{
		{
			name:        "pending occurrence",
			occurrence:  domain.NewOccurrence(ownerID, scheduleID, scheduledTime),
			wantStatus:  domain.StatusPending,
			wantTakenAt: false,
		},
		{
			name:        "completed occurrence",
			occurrence:  completed,
			wantStatus:  domain.StatusCompleted,
			wantTakenAt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := repository.OccurrenceFromEntity(tt.occurrence)

			assert.NotNil(t, m.Deliveries)
			assert.Empty(t, m.Deliveries)

			restored, err := m.ToEntity()
			require.NoError(t, err)

			assert.Equal(t, tt.occurrence.ID(), restored.ID())
			assert.Equal(t, tt.wantStatus, restored.Status())
			assert.False(t, restored.IsNotified())

			_, ok := restored.TakenAt()
			assert.Equal(t, tt.wantTakenAt, ok)
		})
	}
}

func TestOccurrenceModelToEntityError(t *testing.T) {
	m := repository.OccurrenceFromEntity(
		domain.NewOccurrence(createValidOwnerID(t), domain.NewScheduleID(), time.Now()),
	)
	m.Status = "snoozed"

	_, err := m.ToEntity()

	assert.ErrorIs(t, err, domain.ErrInvalidOccurrenceStatus)
}

func TestOwnerModelRoundTripSuccess(t *testing.T) {
	owner, err := domain.NewOwner(createValidOwnerID(t), "pat@example.com", "device-token")
	require.NoError(t, err)

	m := repository.OwnerFromEntity(owner)

	restored, err := m.ToEntity()
	require.NoError(t, err)

	assert.Equal(t, owner.ID(), restored.ID())
	assert.Equal(t, "pat@example.com", restored.Email())
	assert.Equal(t, "device-token", restored.DeviceToken())
}
