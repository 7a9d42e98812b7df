package domain

import (
	"fmt"
	"strings"
	"time"
)

type WeekdaySet struct {
	days [7]bool
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWeekday accepts full english day names or three letter abbreviations, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}

	return d, nil
}

func NewWeekdaySet(days []time.Weekday) (WeekdaySet, error) {
	if len(days) == 0 {
		return WeekdaySet{}, ErrEmptyWeekdays
	}

	var set WeekdaySet
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return WeekdaySet{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}

		set.days[d] = true
	}

	return set, nil
}

func WeekdaySetFromNames(names []string) (WeekdaySet, error) {
	if len(names) == 0 {
		return WeekdaySet{}, ErrEmptyWeekdays
	}

	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return WeekdaySet{}, err
		}

		days = append(days, d)
	}

	return NewWeekdaySet(days)
}

func (w WeekdaySet) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}

	return w.days[d]
}

func (w WeekdaySet) Count() int {
	n := 0
	for _, ok := range w.days {
		if ok {
			n++
		}
	}

	return n
}

// Days returns the members ordered Sunday through Saturday.
func (w WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, w.Count())
	for d, ok := range w.days {
		if ok {
			days = append(days, time.Weekday(d))
		}
	}

	return days
}

func (w WeekdaySet) Names() []string {
	days := w.Days()

	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, strings.ToLower(d.String()))
	}

	return names
}
