package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlinto/MedRemApp/internal/domain"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{name: "full lowercase", input: "monday", want: time.Monday},
		{name: "full capitalized", input: "Wednesday", want: time.Wednesday},
		{name: "abbreviation", input: "fri", want: time.Friday},
		{name: "abbreviation uppercase", input: "SUN", want: time.Sunday},
		{name: "unknown", input: "someday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseWeekday(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidWeekday)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWeekdaySetSuccess(t *testing.T) {
	set, err := domain.NewWeekdaySet([]time.Weekday{time.Friday, time.Monday, time.Friday, time.Wednesday})

	require.NoError(t, err)
	assert.Equal(t, 3, set.Count())
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, set.Days())
	assert.Equal(t, []string{"monday", "wednesday", "friday"}, set.Names())
	assert.True(t, set.Contains(time.Monday))
	assert.False(t, set.Contains(time.Tuesday))
	assert.False(t, set.Contains(time.Weekday(9)))
}

func TestNewWeekdaySetError(t *testing.T) {
	tests := []struct {
		name    string
		days    []time.Weekday
		wantErr error
	}{
		{
			name:    "empty",
			days:    nil,
			wantErr: domain.ErrEmptyWeekdays,
		},
		{
			name:    "out of range",
			days:    []time.Weekday{time.Monday, time.Weekday(7)},
			wantErr: domain.ErrInvalidWeekday,
		},
		{
			name:    "negative",
			days:    []time.Weekday{time.Weekday(-1)},
			wantErr: domain.ErrInvalidWeekday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewWeekdaySet(tt.days)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWeekdaySetFromNames(t *testing.T) {
	set, err := domain.WeekdaySetFromNames([]string{"Sat", "sunday"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sunday", "saturday"}, set.Names())

	_, err = domain.WeekdaySetFromNames(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyWeekdays)

	_, err = domain.WeekdaySetFromNames([]string{"monday", "funday"})
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}
