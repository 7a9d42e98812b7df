package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/charlinto/MedRemApp/internal/app"
)

// OwnerIDHeader carries the authenticated owner, set by the gateway in front
// of this service.
const OwnerIDHeader = "X-Owner-ID"

var errMissingOwner = errors.New("missing owner")

// ownerID reads the owner header and writes a 401 when it is absent.
func ownerID(c *gin.Context) (string, error) {
	owner := strings.TrimSpace(c.GetHeader(OwnerIDHeader))
	if owner == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: OwnerIDHeader + " header is required",
		})

		return "", errMissingOwner
	}

	return owner, nil
}

func bindingError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
		})

		return
	}

	if errors.Is(err, app.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "invalid_transition",
			Message: "occurrence is no longer pending",
		})

		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

// parseDate accepts RFC 3339 timestamps and YYYY-MM-DD dates. A date is the
// start of that day in loc, or its last microsecond when endOfDay is set.
func parseDate(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, err
	}

	if endOfDay {
		return day.AddDate(0, 0, 1).Add(-time.Microsecond), nil
	}

	return day, nil
}

func parseOptionalDate(field, value string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := parseDate(value, loc, endOfDay)
	if err != nil {
		return nil, app.NewValidationError(field, "must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	}

	return &t, nil
}

// RegisterRoutes mounts every handler under router.
func RegisterRoutes(
	router *gin.RouterGroup,
	schedules *ScheduleHandler,
	occurrences *OccurrenceHandler,
	owners *OwnerHandler,
	dispatch *DispatchHandler,
) {
	schedules.RegisterRoutes(router)
	occurrences.RegisterRoutes(router)
	owners.RegisterRoutes(router)
	dispatch.RegisterRoutes(router)
}
