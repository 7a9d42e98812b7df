package handler

type DoseRuleRequest struct {
	TimeOfDay string   `json:"time_of_day" binding:"required"`
	Weekdays  []string `json:"weekdays" binding:"required,min=1"`
}

type CreateScheduleRequest struct {
	Name      string            `json:"name" binding:"required"`
	Dosage    string            `json:"dosage" binding:"required"`
	Rules     []DoseRuleRequest `json:"rules" binding:"required,min=1,dive"`
	ValidFrom string            `json:"valid_from" binding:"required"`
	ValidTo   *string           `json:"valid_to"`
	Notes     string            `json:"notes"`
}

// UpdateScheduleRequest is a partial update: absent fields are kept.
type UpdateScheduleRequest struct {
	Name         *string           `json:"name"`
	Dosage       *string           `json:"dosage"`
	Rules        []DoseRuleRequest `json:"rules" binding:"omitempty,min=1,dive"`
	ValidFrom    *string           `json:"valid_from"`
	ValidTo      *string           `json:"valid_to"`
	ClearValidTo bool              `json:"clear_valid_to"`
	Notes        *string           `json:"notes"`
}

type ListOccurrencesRequest struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status"`
}

type DailySummaryRequest struct {
	Date string `form:"date"`
}

type MarkOccurrenceRequest struct {
	Status string `json:"status" binding:"required"`
}

type RegisterContactRequest struct {
	Email       string `json:"email" binding:"required"`
	DeviceToken string `json:"device_token"`
}
