package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/charlinto/MedRemApp/internal/app"
)

type ScheduleHandler struct {
	useCase  app.ScheduleUseCase
	location *time.Location
}

// NewScheduleHandler builds the schedule routes. Date-only validity bounds
// are read in loc.
func NewScheduleHandler(useCase app.ScheduleUseCase, loc *time.Location) *ScheduleHandler {
	if loc == nil {
		loc = time.Local
	}

	return &ScheduleHandler{
		useCase:  useCase,
		location: loc,
	}
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)

		return
	}

	validFrom, err := parseOptionalDate("valid_from", req.ValidFrom, h.location, false)
	if err != nil {
		handleError(c, err)

		return
	}

	var validTo *time.Time
	if req.ValidTo != nil {
		validTo, err = parseOptionalDate("valid_to", *req.ValidTo, h.location, true)
		if err != nil {
			handleError(c, err)

			return
		}
	}

	input := app.CreateScheduleInput{
		OwnerID:   owner,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Rules:     toRuleInputs(req.Rules),
		ValidFrom: *validFrom,
		ValidTo:   validTo,
		Notes:     req.Notes,
	}

	output, err := h.useCase.CreateSchedule(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "schedule created successfully",
		"schedule_id", output.Schedule.ID,
		"occurrences_created", output.Reconcile.Created,
	)
	c.JSON(http.StatusCreated, FromScheduleChangeDTO(output))
}

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	output, err := h.useCase.ListSchedules(c.Request.Context(), app.ListSchedulesInput{OwnerID: owner})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromSchedulesDTO(output))
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	output, err := h.useCase.GetSchedule(c.Request.Context(), app.GetScheduleInput{
		ID:      c.Param("id"),
		OwnerID: owner,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromScheduleDTO(output))
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)

		return
	}

	input := app.UpdateScheduleInput{
		ID:           c.Param("id"),
		OwnerID:      owner,
		Name:         req.Name,
		Dosage:       req.Dosage,
		ClearValidTo: req.ClearValidTo,
		Notes:        req.Notes,
	}

	if req.Rules != nil {
		input.Rules = toRuleInputs(req.Rules)
	}

	if req.ValidFrom != nil {
		input.ValidFrom, err = parseOptionalDate("valid_from", *req.ValidFrom, h.location, false)
		if err != nil {
			handleError(c, err)

			return
		}
	}

	if req.ValidTo != nil {
		input.ValidTo, err = parseOptionalDate("valid_to", *req.ValidTo, h.location, true)
		if err != nil {
			handleError(c, err)

			return
		}
	}

	output, err := h.useCase.UpdateSchedule(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "schedule updated successfully",
		"schedule_id", output.Schedule.ID,
		"occurrences_deleted", output.Reconcile.Deleted,
		"occurrences_created", output.Reconcile.Created,
	)
	c.JSON(http.StatusOK, FromScheduleChangeDTO(output))
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	id := c.Param("id")

	output, err := h.useCase.DeleteSchedule(c.Request.Context(), app.DeleteScheduleInput{
		ID:      id,
		OwnerID: owner,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "schedule deleted successfully",
		"schedule_id", id,
		"occurrences_deleted", output.DeletedOccurrences,
	)
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/schedules")
	{
		schedules.POST("", h.CreateSchedule)
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:id", h.GetSchedule)
		schedules.PUT("/:id", h.UpdateSchedule)
		schedules.DELETE("/:id", h.DeleteSchedule)
	}
}

func toRuleInputs(rules []DoseRuleRequest) []app.DoseRuleInput {
	inputs := make([]app.DoseRuleInput, 0, len(rules))
	for _, r := range rules {
		inputs = append(inputs, app.DoseRuleInput(r))
	}

	return inputs
}
