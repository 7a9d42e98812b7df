package domain

type DoseRule struct {
	timeOfDay TimeOfDay
	weekdays  WeekdaySet
}

func NewDoseRule(timeOfDay TimeOfDay, weekdays WeekdaySet) (DoseRule, error) {
	if weekdays.Count() == 0 {
		return DoseRule{}, ErrEmptyWeekdays
	}

	return DoseRule{
		timeOfDay: timeOfDay,
		weekdays:  weekdays,
	}, nil
}

// ParseDoseRule builds a rule from its wire form, e.g. ("08:00", ["monday", "friday"]).
func ParseDoseRule(timeOfDay string, weekdays []string) (DoseRule, error) {
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return DoseRule{}, err
	}

	w, err := WeekdaySetFromNames(weekdays)
	if err != nil {
		return DoseRule{}, err
	}

	return NewDoseRule(t, w)
}

func (r DoseRule) TimeOfDay() TimeOfDay {
	return r.timeOfDay
}

func (r DoseRule) Weekdays() WeekdaySet {
	return r.weekdays
}

func (r DoseRule) Equals(other DoseRule) bool {
	return r.timeOfDay == other.timeOfDay && r.weekdays == other.weekdays
}

type DoseRules []DoseRule

func NewDoseRules(rules []DoseRule) (DoseRules, error) {
	if len(rules) == 0 {
		return nil, ErrNoDoseRules
	}

	for _, r := range rules {
		if r.weekdays.Count() == 0 {
			return nil, ErrEmptyWeekdays
		}
	}

	return DoseRules(rules), nil
}

func (r DoseRules) ToSlice() []DoseRule {
	return r
}

func (r DoseRules) Count() int {
	return len(r)
}
