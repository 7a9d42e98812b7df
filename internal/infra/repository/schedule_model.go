package repository

import (
	"time"

	"gorm.io/datatypes"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type DoseRuleJSON struct {
	TimeOfDay string   `json:"time_of_day"`
	Weekdays  []string `json:"weekdays"`
}

type ScheduleModel struct {
	ID        string                           `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID   string                           `gorm:"column:owner_id;type:uuid;not null;index:idx_medication_schedules_owner_id"`
	Name      string                           `gorm:"column:name;type:varchar(255);not null"`
	Dosage    string                           `gorm:"column:dosage;type:varchar(255);not null"`
	Rules     datatypes.JSONSlice[DoseRuleJSON] `gorm:"column:rules;type:jsonb;not null"`
	ValidFrom time.Time                        `gorm:"column:valid_from;type:timestamptz;not null"`
	ValidTo   *time.Time                       `gorm:"column:valid_to;type:timestamptz"`
	Notes     string                           `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt time.Time                        `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time                        `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ScheduleModel) TableName() string {
	return "medication_schedules"
}

func (m *ScheduleModel) ToEntity() (*domain.Schedule, error) {
	scheduleID, err := domain.ScheduleIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.OwnerIDFromString(m.OwnerID)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.DoseRule, 0, len(m.Rules))
	for _, r := range m.Rules {
		rule, err := domain.ParseDoseRule(r.TimeOfDay, r.Weekdays)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	doseRules, err := domain.NewDoseRules(rules)
	if err != nil {
		return nil, err
	}

	validity, err := domain.NewValidityWindow(m.ValidFrom, m.ValidTo)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteSchedule(
		scheduleID,
		ownerID,
		m.Name,
		m.Dosage,
		doseRules,
		validity,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func ScheduleFromEntity(e *domain.Schedule) *ScheduleModel {
	rules := make([]DoseRuleJSON, 0, e.Rules().Count())
	for _, r := range e.Rules().ToSlice() {
		rules = append(rules, DoseRuleJSON{
			TimeOfDay: r.TimeOfDay().String(),
			Weekdays:  r.Weekdays().Names(),
		})
	}

	var validTo *time.Time
	if to, ok := e.Validity().To(); ok {
		validTo = &to
	}

	return &ScheduleModel{
		ID:        e.ID().String(),
		OwnerID:   e.OwnerID().String(),
		Name:      e.Name(),
		Dosage:    e.Dosage(),
		Rules:     datatypes.NewJSONSlice(rules),
		ValidFrom: e.Validity().From(),
		ValidTo:   validTo,
		Notes:     e.Notes(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}
