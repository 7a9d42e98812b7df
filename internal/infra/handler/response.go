package handler

import (
	"time"

	"github.com/charlinto/MedRemApp/internal/app"
)

type DoseRuleResponse struct {
	TimeOfDay string   `json:"time_of_day"`
	Weekdays  []string `json:"weekdays"`
}

type ScheduleResponse struct {
	ID        string             `json:"id"`
	OwnerID   string             `json:"owner_id"`
	Name      string             `json:"name"`
	Dosage    string             `json:"dosage"`
	Rules     []DoseRuleResponse `json:"rules"`
	ValidFrom time.Time          `json:"valid_from"`
	ValidTo   *time.Time         `json:"valid_to"`
	Notes     string             `json:"notes"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type SchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Count     int32              `json:"count"`
}

type ScheduleChangeResponse struct {
	Schedule           ScheduleResponse `json:"schedule"`
	DeletedOccurrences int64            `json:"deleted_occurrences"`
	CreatedOccurrences int              `json:"created_occurrences"`
}

type OccurrenceResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	ScheduleID     string     `json:"schedule_id"`
	MedicationName string     `json:"medication_name,omitempty"`
	Dosage         string     `json:"dosage,omitempty"`
	ScheduledTime  time.Time  `json:"scheduled_time"`
	Status         string     `json:"status"`
	Notified       bool       `json:"notified"`
	TakenAt        *time.Time `json:"taken_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type OccurrencesResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Count       int32                `json:"count"`
}

type DailySummaryResponse struct {
	Date        string               `json:"date"`
	Total       int                  `json:"total"`
	Completed   int                  `json:"completed"`
	Pending     int                  `json:"pending"`
	Missed      int                  `json:"missed"`
	Medications []string             `json:"medications"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type ChannelResultResponse struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

type OccurrenceReportResponse struct {
	OccurrenceID  string                  `json:"occurrence_id"`
	ScheduleID    string                  `json:"schedule_id"`
	ScheduledTime time.Time               `json:"scheduled_time"`
	Outcome       string                  `json:"outcome"`
	Reason        string                  `json:"reason,omitempty"`
	Channels      []ChannelResultResponse `json:"channels"`
}

type DispatchReportResponse struct {
	StartedAt   time.Time                  `json:"started_at"`
	FinishedAt  time.Time                  `json:"finished_at"`
	Eligible    int                        `json:"eligible"`
	Notified    int                        `json:"notified"`
	Skipped     int                        `json:"skipped"`
	Failed      int                        `json:"failed"`
	Occurrences []OccurrenceReportResponse `json:"occurrences"`
}

type ContactResponse struct {
	OwnerID     string `json:"owner_id"`
	Email       string `json:"email"`
	DeviceToken string `json:"device_token,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromScheduleDTO(output app.ScheduleOutput) ScheduleResponse {
	rules := make([]DoseRuleResponse, 0, len(output.Rules))
	for _, r := range output.Rules {
		rules = append(rules, DoseRuleResponse{
			TimeOfDay: r.TimeOfDay,
			Weekdays:  r.Weekdays,
		})
	}

	return ScheduleResponse{
		ID:        output.ID,
		OwnerID:   output.OwnerID,
		Name:      output.Name,
		Dosage:    output.Dosage,
		Rules:     rules,
		ValidFrom: output.ValidFrom,
		ValidTo:   output.ValidTo,
		Notes:     output.Notes,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

func FromSchedulesDTO(output app.SchedulesOutput) SchedulesResponse {
	schedules := make([]ScheduleResponse, 0, len(output.Schedules))
	for _, s := range output.Schedules {
		schedules = append(schedules, FromScheduleDTO(s))
	}

	return SchedulesResponse{
		Schedules: schedules,
		Count:     output.Count,
	}
}

func FromScheduleChangeDTO(output app.ScheduleChangeOutput) ScheduleChangeResponse {
	return ScheduleChangeResponse{
		Schedule:           FromScheduleDTO(output.Schedule),
		DeletedOccurrences: output.Reconcile.Deleted,
		CreatedOccurrences: output.Reconcile.Created,
	}
}

func FromOccurrenceDTO(output app.OccurrenceOutput) OccurrenceResponse {
	return OccurrenceResponse{
		ID:             output.ID,
		OwnerID:        output.OwnerID,
		ScheduleID:     output.ScheduleID,
		MedicationName: output.MedicationName,
		Dosage:         output.Dosage,
		ScheduledTime:  output.ScheduledTime,
		Status:         output.Status,
		Notified:       output.Notified,
		TakenAt:        output.TakenAt,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

func FromOccurrencesDTO(output app.OccurrencesOutput) OccurrencesResponse {
	occurrences := make([]OccurrenceResponse, 0, len(output.Occurrences))
	for _, o := range output.Occurrences {
		occurrences = append(occurrences, FromOccurrenceDTO(o))
	}

	return OccurrencesResponse{
		Occurrences: occurrences,
		Count:       output.Count,
	}
}

func FromDailySummaryDTO(output app.DailySummaryOutput) DailySummaryResponse {
	occurrences := make([]OccurrenceResponse, 0, len(output.Occurrences))
	for _, o := range output.Occurrences {
		occurrences = append(occurrences, FromOccurrenceDTO(o))
	}

	return DailySummaryResponse{
		Date:        output.Date,
		Total:       output.Total,
		Completed:   output.Completed,
		Pending:     output.Pending,
		Missed:      output.Missed,
		Medications: output.Medications,
		Occurrences: occurrences,
	}
}

func FromDispatchReport(report app.DispatchReport) DispatchReportResponse {
	occurrences := make([]OccurrenceReportResponse, 0, len(report.Occurrences))
	for _, o := range report.Occurrences {
		channels := make([]ChannelResultResponse, 0, len(o.Channels))
		for _, c := range o.Channels {
			channels = append(channels, ChannelResultResponse(c))
		}

		occurrences = append(occurrences, OccurrenceReportResponse{
			OccurrenceID:  o.OccurrenceID,
			ScheduleID:    o.ScheduleID,
			ScheduledTime: o.ScheduledTime,
			Outcome:       o.Outcome,
			Reason:        o.Reason,
			Channels:      channels,
		})
	}

	return DispatchReportResponse{
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Eligible:    report.Eligible,
		Notified:    report.Notified,
		Skipped:     report.Skipped,
		Failed:      report.Failed,
		Occurrences: occurrences,
	}
}

func FromContactDTO(output app.ContactOutput) ContactResponse {
	return ContactResponse(output)
}
