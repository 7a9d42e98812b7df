package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/charlinto/MedRemApp/internal/app"
)

type OccurrenceHandler struct {
	useCase  app.OccurrenceUseCase
	location *time.Location
}

func NewOccurrenceHandler(useCase app.OccurrenceUseCase, loc *time.Location) *OccurrenceHandler {
	if loc == nil {
		loc = time.Local
	}

	return &OccurrenceHandler{
		useCase:  useCase,
		location: loc,
	}
}

func (h *OccurrenceHandler) ListOccurrences(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	var req ListOccurrencesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)

		return
	}

	from, err := parseOptionalDate("from", req.From, h.location, false)
	if err != nil {
		handleError(c, err)

		return
	}

	to, err := parseOptionalDate("to", req.To, h.location, true)
	if err != nil {
		handleError(c, err)

		return
	}

	output, err := h.useCase.ListOccurrences(c.Request.Context(), app.ListOccurrencesInput{
		OwnerID: owner,
		From:    from,
		To:      to,
		Status:  req.Status,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromOccurrencesDTO(output))
}

func (h *OccurrenceHandler) DailySummary(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	var req DailySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)

		return
	}

	date, err := parseOptionalDate("date", req.Date, h.location, false)
	if err != nil {
		handleError(c, err)

		return
	}

	input := app.DailySummaryInput{OwnerID: owner}
	if date != nil {
		input.Date = *date
	}

	output, err := h.useCase.DailySummary(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDailySummaryDTO(output))
}

func (h *OccurrenceHandler) MarkOccurrence(c *gin.Context) {
	owner, err := ownerID(c)
	if err != nil {
		return
	}

	id := c.Param("id")

	var req MarkOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)

		return
	}

	output, err := h.useCase.MarkOccurrence(c.Request.Context(), app.MarkOccurrenceInput{
		ID:      id,
		OwnerID: owner,
		Outcome: req.Status,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "occurrence status updated successfully",
		"occurrence_id", id,
		"status", output.Status,
	)
	c.JSON(http.StatusOK, FromOccurrenceDTO(output))
}

func (h *OccurrenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	occurrences := router.Group("/occurrences")
	{
		occurrences.GET("", h.ListOccurrences)
		occurrences.GET("/daily-summary", h.DailySummary)
		occurrences.PATCH("/:id/status", h.MarkOccurrence)
	}
}
