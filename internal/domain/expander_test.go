package domain_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func createScheduleWithRules(t *testing.T, validity domain.ValidityWindow, rules ...domain.DoseRule) *domain.Schedule {
	t.Helper()

	s, err := domain.NewSchedule(createValidOwnerID(t), "Metformin", "500mg", mustDoseRules(t, rules...), validity, "")
	require.NoError(t, err)

	return s
}

func TestExpandCountsMatchingWeekdays(t *testing.T) {
	// 2025-03-03 is a Monday.
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "before the first dose of today",
			now:  today.Add(7 * time.Hour),
			want: 13,
		},
		{
			name: "after the first dose of today",
			now:  today.Add(9 * time.Hour),
			want: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := createScheduleWithRules(t,
				createValidity(t, today, nil),
				mustDoseRule(t, "08:00", "monday", "wednesday", "friday"),
			)
			expander := domain.NewExpander(time.UTC, fixedClock(tt.now))

			candidates := expander.Expand(schedule, tt.now, domain.DefaultHorizonDays)

			want := 0
			for i := 0; i < domain.DefaultHorizonDays; i++ {
				day := today.AddDate(0, 0, i)
				switch day.Weekday() {
				case time.Monday, time.Wednesday, time.Friday:
					if !day.Add(8 * time.Hour).Before(tt.now) {
						want++
					}
				}
			}

			assert.Equal(t, tt.want, want)
			assert.Len(t, candidates, tt.want)

			for _, c := range candidates {
				assert.False(t, c.ScheduledTime.Before(tt.now))
				assert.Equal(t, 8, c.ScheduledTime.Hour())
				assert.Equal(t, 0, c.ScheduledTime.Minute())
				assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, c.ScheduledTime.Weekday())
				assert.True(t, c.ScheduleID.Equals(schedule.ID()))
				assert.True(t, c.OwnerID.Equals(schedule.OwnerID()))
			}
		})
	}
}

func TestExpandRespectsValidTo(t *testing.T) {
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	now := today.Add(9 * time.Hour)
	validTo := today.AddDate(0, 0, 10)

	schedule := createScheduleWithRules(t,
		createValidity(t, today, &validTo),
		mustDoseRule(t, "08:00", "monday", "wednesday", "friday"),
	)
	expander := domain.NewExpander(time.UTC, fixedClock(now))

	candidates := expander.Expand(schedule, now, domain.DefaultHorizonDays)

	got := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		assert.False(t, c.ScheduledTime.After(validTo))
		got = append(got, c.ScheduledTime)
	}

	assert.Equal(t, []time.Time{
		time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
	}, got)
}

func TestExpandRespectsValidFrom(t *testing.T) {
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	validFrom := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	schedule := createScheduleWithRules(t,
		createValidity(t, validFrom, nil),
		mustDoseRule(t, "08:00", "monday", "wednesday", "friday"),
	)
	expander := domain.NewExpander(time.UTC, fixedClock(today))

	candidates := expander.Expand(schedule, today, domain.DefaultHorizonDays)

	require.NotEmpty(t, candidates)
	assert.Equal(t, time.Date(2025, 3, 21, 8, 0, 0, 0, time.UTC), candidates[0].ScheduledTime)

	for _, c := range candidates {
		assert.False(t, c.ScheduledTime.Before(validFrom))
	}
}

func TestExpandOrdersByRuleThenDay(t *testing.T) {
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	schedule := createScheduleWithRules(t,
		createValidity(t, today, nil),
		mustDoseRule(t, "20:00", "monday", "tuesday"),
		mustDoseRule(t, "08:00", "monday", "tuesday"),
	)
	expander := domain.NewExpander(time.UTC, fixedClock(today))

	candidates := expander.Expand(schedule, today, 2)

	got := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		got = append(got, c.ScheduledTime)
	}

	assert.Equal(t, []time.Time{
		time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
	}, got)
}

func TestExpandAcrossDaylightSavingChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks move forward on 2025-03-09 in New York.
	start := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)

	schedule := createScheduleWithRules(t,
		createValidity(t, start, nil),
		mustDoseRule(t, "08:00", "sat", "sun", "mon"),
	)
	expander := domain.NewExpander(loc, fixedClock(start))

	candidates := expander.Expand(schedule, start, 3)

	require.Len(t, candidates, 3)

	for _, c := range candidates {
		assert.Equal(t, 8, c.ScheduledTime.In(loc).Hour())
	}

	assert.Equal(t, 23*time.Hour, candidates[1].ScheduledTime.Sub(candidates[0].ScheduledTime))
	assert.Equal(t, 24*time.Hour, candidates[2].ScheduledTime.Sub(candidates[1].ScheduledTime))
}

func TestExpandOverlappingRulesYieldsDuplicates(t *testing.T) {
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	schedule := createScheduleWithRules(t,
		createValidity(t, today, nil),
		mustDoseRule(t, "08:00", "monday", "tuesday"),
		mustDoseRule(t, "08:00", "tuesday", "wednesday"),
	)
	expander := domain.NewExpander(time.UTC, fixedClock(today))

	candidates := expander.Expand(schedule, today, 7)
	assert.Len(t, candidates, 4)

	deduped := domain.DedupCandidates(candidates)
	require.Len(t, deduped, 3)

	seen := make(map[time.Time]bool)
	for _, c := range deduped {
		assert.False(t, seen[c.ScheduledTime])
		seen[c.ScheduledTime] = true
	}
}

func TestExpandEmptyInputs(t *testing.T) {
	today := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	expander := domain.NewExpander(time.UTC, fixedClock(today))

	assert.Empty(t, expander.Expand(nil, today, domain.DefaultHorizonDays))

	schedule := createScheduleWithRules(t,
		createValidity(t, today, nil),
		mustDoseRule(t, "08:00", "monday"),
	)
	assert.Empty(t, expander.Expand(schedule, today, 0))
}

func TestNewExpanderDefaults(t *testing.T) {
	expander := domain.NewExpander(nil, nil)

	assert.Equal(t, time.Local, expander.Location())
}
