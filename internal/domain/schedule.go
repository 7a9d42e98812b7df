package domain

import (
	"strings"
	"time"
)

type Schedule struct {
	id        ScheduleID
	ownerID   OwnerID
	name      string
	dosage    string
	rules     DoseRules
	validity  ValidityWindow
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

type ScheduleRevision struct {
	Name     string
	Dosage   string
	Rules    DoseRules
	Validity ValidityWindow
	Notes    string
}

func NewSchedule(
	ownerID OwnerID,
	name string,
	dosage string,
	rules DoseRules,
	validity ValidityWindow,
	notes string,
) (*Schedule, error) {
	if ownerID.IsZero() {
		return nil, ErrInvalidOwnerID
	}

	if err := validateRevision(name, dosage, rules, validity); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Schedule{
		id:        NewScheduleID(),
		ownerID:   ownerID,
		name:      strings.TrimSpace(name),
		dosage:    strings.TrimSpace(dosage),
		rules:     rules,
		validity:  validity,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteSchedule(
	id ScheduleID,
	ownerID OwnerID,
	name string,
	dosage string,
	rules DoseRules,
	validity ValidityWindow,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		dosage:    dosage,
		rules:     rules,
		validity:  validity,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces the mutable part of the schedule in place.
func (s *Schedule) Revise(rev ScheduleRevision) error {
	if err := validateRevision(rev.Name, rev.Dosage, rev.Rules, rev.Validity); err != nil {
		return err
	}

	s.name = strings.TrimSpace(rev.Name)
	s.dosage = strings.TrimSpace(rev.Dosage)
	s.rules = rev.Rules
	s.validity = rev.Validity
	s.notes = rev.Notes
	s.updatedAt = time.Now()

	return nil
}

func validateRevision(name, dosage string, rules DoseRules, validity ValidityWindow) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyMedicationName
	}

	if strings.TrimSpace(dosage) == "" {
		return ErrEmptyDosage
	}

	if rules.Count() == 0 {
		return ErrNoDoseRules
	}

	if validity.From().IsZero() {
		return ErrMissingValidFrom
	}

	return nil
}

func (s *Schedule) ID() ScheduleID {
	return s.id
}

func (s *Schedule) OwnerID() OwnerID {
	return s.ownerID
}

func (s *Schedule) Name() string {
	return s.name
}

func (s *Schedule) Dosage() string {
	return s.dosage
}

func (s *Schedule) Rules() DoseRules {
	return s.rules
}

func (s *Schedule) Validity() ValidityWindow {
	return s.validity
}

func (s *Schedule) Notes() string {
	return s.notes
}

func (s *Schedule) IsOwnedBy(ownerID OwnerID) bool {
	return s.ownerID.Equals(ownerID)
}

func (s *Schedule) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Schedule) UpdatedAt() time.Time {
	return s.updatedAt
}
