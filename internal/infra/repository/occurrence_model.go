package repository

import (
	"time"

	"gorm.io/datatypes"

	"github.com/charlinto/MedRemApp/internal/domain"
)

type DeliveryJSON struct {
	Channel     string    `json:"channel"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}

type OccurrenceModel struct {
	ID                string                            `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID           string                            `gorm:"column:owner_id;type:uuid;not null;index:idx_reminder_occurrences_owner_time,priority:1"`
	ScheduleID        string                            `gorm:"column:schedule_id;type:uuid;not null;uniqueIndex:idx_reminder_occurrences_schedule_time,priority:1"`
	ScheduledTime     time.Time                         `gorm:"column:scheduled_time;type:timestamptz;not null;uniqueIndex:idx_reminder_occurrences_schedule_time,priority:2;index:idx_reminder_occurrences_eligible,priority:3;index:idx_reminder_occurrences_owner_time,priority:2"`
	Status            string                            `gorm:"column:status;type:varchar(16);not null;index:idx_reminder_occurrences_eligible,priority:1"`
	Notified          bool                              `gorm:"column:notified;type:boolean;not null;default:false;index:idx_reminder_occurrences_eligible,priority:2"`
	NotifiedAt        *time.Time                        `gorm:"column:notified_at;type:timestamptz"`
	DispatchSkippedAt *time.Time                        `gorm:"column:dispatch_skipped_at;type:timestamptz"`
	SkipReason        string                            `gorm:"column:skip_reason;type:text;not null;default:''"`
	TakenAt           *time.Time                        `gorm:"column:taken_at;type:timestamptz"`
	Deliveries        datatypes.JSONSlice[DeliveryJSON] `gorm:"column:deliveries;type:jsonb;not null;default:'[]'"`
	CreatedAt         time.Time                         `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt         time.Time                         `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (OccurrenceModel) TableName() string {
	return "reminder_occurrences"
}

func (m *OccurrenceModel) ToEntity() (*domain.Occurrence, error) {
	occurrenceID, err := domain.OccurrenceIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.OwnerIDFromString(m.OwnerID)
	if err != nil {
		return nil, err
	}

	scheduleID, err := domain.ScheduleIDFromString(m.ScheduleID)
	if err != nil {
		return nil, err
	}

	status, err := domain.NewOccurrenceStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteOccurrence(
		occurrenceID,
		ownerID,
		scheduleID,
		m.ScheduledTime,
		status,
		m.Notified,
		m.TakenAt,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func OccurrenceFromEntity(e *domain.Occurrence) *OccurrenceModel {
	var takenAt *time.Time
	if t, ok := e.TakenAt(); ok {
		takenAt = &t
	}

	return &OccurrenceModel{
		ID:            e.ID().String(),
		OwnerID:       e.OwnerID().String(),
		ScheduleID:    e.ScheduleID().String(),
		ScheduledTime: e.ScheduledTime(),
		Status:        e.Status().String(),
		Notified:      e.IsNotified(),
		TakenAt:       takenAt,
		Deliveries:    datatypes.NewJSONSlice([]DeliveryJSON{}),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func deliveriesToJSON(deliveries []domain.Delivery) datatypes.JSONSlice[DeliveryJSON] {
	out := make([]DeliveryJSON, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, DeliveryJSON{
			Channel:     d.Channel,
			Status:      string(d.Status),
			Reason:      d.Reason,
			AttemptedAt: d.AttemptedAt,
		})
	}

	return datatypes.NewJSONSlice(out)
}
