package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/domain"
)

func mustDoseRule(t *testing.T, timeOfDay string, weekdays ...string) domain.DoseRule {
	t.Helper()

	rule, err := domain.ParseDoseRule(timeOfDay, weekdays)
	require.NoError(t, err)

	return rule
}

func mustDoseRules(t *testing.T, rules ...domain.DoseRule) domain.DoseRules {
	t.Helper()

	r, err := domain.NewDoseRules(rules)
	require.NoError(t, err)

	return r
}

func TestParseDoseRuleSuccess(t *testing.T) {
	rule, err := domain.ParseDoseRule("21:15", []string{"tue", "thu"})

	require.NoError(t, err)
	assert.Equal(t, "21:15", rule.TimeOfDay().String())
	assert.Equal(t, []string{"tuesday", "thursday"}, rule.Weekdays().Names())
}

func TestParseDoseRuleError(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		weekdays  []string
		wantErr   error
	}{
		{
			name:      "bad time",
			timeOfDay: "8am",
			weekdays:  []string{"monday"},
			wantErr:   domain.ErrInvalidTimeOfDay,
		},
		{
			name:      "no weekdays",
			timeOfDay: "08:00",
			weekdays:  []string{},
			wantErr:   domain.ErrEmptyWeekdays,
		},
		{
			name:      "bad weekday",
			timeOfDay: "08:00",
			weekdays:  []string{"mon", "xyz"},
			wantErr:   domain.ErrInvalidWeekday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseDoseRule(tt.timeOfDay, tt.weekdays)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewDoseRuleEmptyWeekdays(t *testing.T) {
	_, err := domain.NewDoseRule(domain.MustTimeOfDay("08:00"), domain.WeekdaySet{})

	assert.ErrorIs(t, err, domain.ErrEmptyWeekdays)
}

func TestDoseRuleEquals(t *testing.T) {
	a := mustDoseRule(t, "08:00", "monday", "friday")
	b := mustDoseRule(t, "8:00", "fri", "mon")
	c := mustDoseRule(t, "08:00", "monday")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNewDoseRules(t *testing.T) {
	rules, err := domain.NewDoseRules([]domain.DoseRule{
		mustDoseRule(t, "08:00", "monday"),
		mustDoseRule(t, "20:00", "monday"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rules.Count())
	assert.Len(t, rules.ToSlice(), 2)

	_, err = domain.NewDoseRules(nil)
	assert.ErrorIs(t, err, domain.ErrNoDoseRules)

	_, err = domain.NewDoseRules([]domain.DoseRule{{}})
	assert.ErrorIs(t, err, domain.ErrEmptyWeekdays)
}
