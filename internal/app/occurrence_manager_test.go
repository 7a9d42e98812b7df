package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/charlinto/MedRemApp/internal/app"
	"github.com/charlinto/MedRemApp/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newOwnerID(t *testing.T) domain.OwnerID {
	t.Helper()

	id, err := domain.OwnerIDFromUUID(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	return id
}

func newSchedule(t *testing.T, ownerID domain.OwnerID, validFrom time.Time, rules ...domain.DoseRule) *domain.Schedule {
	t.Helper()

	doseRules, err := domain.NewDoseRules(rules)
	require.NoError(t, err)

	validity, err := domain.NewValidityWindow(validFrom, nil)
	require.NoError(t, err)

	schedule, err := domain.NewSchedule(ownerID, "Aspirin", "100mg", doseRules, validity, "")
	require.NoError(t, err)

	return schedule
}

func mustRule(t *testing.T, timeOfDay string, weekdays ...string) domain.DoseRule {
	t.Helper()

	rule, err := domain.ParseDoseRule(timeOfDay, weekdays)
	require.NoError(t, err)

	return rule
}

func TestReconcileSuccess(t *testing.T) {
	// Monday 2025-03-03 07:00 UTC.
	now := time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC)
	validFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rules         func(t *testing.T) []domain.DoseRule
		resolvedTimes []time.Time
		notifiedTimes []time.Time
		expectedTimes []time.Time
	}{
		{
			name: "one rule over two weeks",
			rules: func(t *testing.T) []domain.DoseRule {
				return []domain.DoseRule{mustRule(t, "08:00", "monday")}
			},
			expectedTimes: []time.Time{
				time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "overlapping rules are deduplicated",
			rules: func(t *testing.T) []domain.DoseRule {
				return []domain.DoseRule{
					mustRule(t, "08:00", "monday"),
					mustRule(t, "08:00", "monday", "tuesday"),
				}
			},
			expectedTimes: []time.Time{
				time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "resolved occurrence keeps its slot",
			rules: func(t *testing.T) []domain.DoseRule {
				return []domain.DoseRule{mustRule(t, "08:00", "monday")}
			},
			resolvedTimes: []time.Time{time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)},
			expectedTimes: []time.Time{time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		},
		{
			name: "notified pending occurrence keeps its slot",
			rules: func(t *testing.T) []domain.DoseRule {
				return []domain.DoseRule{mustRule(t, "08:00", "monday")}
			},
			notifiedTimes: []time.Time{time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)},
			expectedTimes: []time.Time{time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ownerID := newOwnerID(t)
			schedule := newSchedule(t, ownerID, validFrom, tt.rules(t)...)

			resolved := make([]*domain.Occurrence, 0, len(tt.resolvedTimes))
			for _, at := range tt.resolvedTimes {
				o := domain.NewOccurrence(ownerID, schedule.ID(), at)
				require.NoError(t, o.Resolve(domain.StatusCompleted, now))
				resolved = append(resolved, o)
			}

			for _, at := range tt.notifiedTimes {
				o := domain.NewOccurrence(ownerID, schedule.ID(), at)
				require.NoError(t, o.MarkNotified())
				resolved = append(resolved, o)
			}

			repo := domain.NewMockOccurrenceRepository(ctrl)
			repo.EXPECT().DeletePendingBySchedule(gomock.Any(), schedule.ID()).Return(int64(3), nil)
			repo.EXPECT().Find(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter domain.OccurrenceFilter) ([]*domain.Occurrence, error) {
					require.NotNil(t, filter.ScheduleID)
					assert.Equal(t, schedule.ID(), *filter.ScheduleID)
					require.NotNil(t, filter.From)
					assert.True(t, now.Equal(*filter.From))

					return resolved, nil
				})

			var saved []*domain.Occurrence

			repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, occurrences []*domain.Occurrence) error {
					saved = occurrences

					return nil
				})

			clock := fixedClock(now)
			manager := app.NewOccurrenceManager(domain.NewExpander(time.UTC, clock), 14, clock)

			result, err := manager.Reconcile(context.Background(), repo, schedule)

			require.NoError(t, err)
			assert.Equal(t, int64(3), result.Deleted)
			assert.Equal(t, len(tt.expectedTimes), result.Created)
			require.Len(t, saved, len(tt.expectedTimes))

			for i, o := range saved {
				assert.True(t, tt.expectedTimes[i].Equal(o.ScheduledTime()), "occurrence %d at %s", i, o.ScheduledTime())
				assert.Equal(t, domain.StatusPending, o.Status())
				assert.False(t, o.IsNotified())
				assert.Equal(t, schedule.ID(), o.ScheduleID())
			}
		})
	}
}

func TestReconcileNothingToCreateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	ownerID := newOwnerID(t)
	schedule := newSchedule(t, ownerID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), mustRule(t, "08:00", "monday"))

	repo := domain.NewMockOccurrenceRepository(ctrl)
	repo.EXPECT().DeletePendingBySchedule(gomock.Any(), schedule.ID()).Return(int64(0), nil)
	repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Times(0)

	clock := fixedClock(now)
	manager := app.NewOccurrenceManager(domain.NewExpander(time.UTC, clock), 1, clock)

	result, err := manager.Reconcile(context.Background(), repo, schedule)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
}

func TestReconcileError(t *testing.T) {
	now := time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC)
	errStore := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(repo *domain.MockOccurrenceRepository)
	}{
		{
			name: "delete fails",
			setup: func(repo *domain.MockOccurrenceRepository) {
				repo.EXPECT().DeletePendingBySchedule(gomock.Any(), gomock.Any()).Return(int64(0), errStore)
			},
		},
		{
			name: "kept lookup fails",
			setup: func(repo *domain.MockOccurrenceRepository) {
				repo.EXPECT().DeletePendingBySchedule(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errStore)
			},
		},
		{
			name: "save fails",
			setup: func(repo *domain.MockOccurrenceRepository) {
				repo.EXPECT().DeletePendingBySchedule(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errStore)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := domain.NewMockOccurrenceRepository(ctrl)
			tt.setup(repo)

			schedule := newSchedule(t, newOwnerID(t), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), mustRule(t, "08:00", "monday"))

			clock := fixedClock(now)
			manager := app.NewOccurrenceManager(domain.NewExpander(time.UTC, clock), 14, clock)

			_, err := manager.Reconcile(context.Background(), repo, schedule)

			assert.ErrorIs(t, err, errStore)
		})
	}
}
