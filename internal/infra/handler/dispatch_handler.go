package handler

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlinto/MedRemApp/internal/app"
)

// AdminTokenHeader carries the operator token for cross-owner routes.
const AdminTokenHeader = "X-Admin-Token"

// DispatchHandler exposes a manual trigger for one dispatch tick. The report
// spans every owner, so the route only answers callers presenting the
// configured admin token; with no token configured it is always forbidden.
type DispatchHandler struct {
	useCase    app.DispatchUseCase
	adminToken string
}

func NewDispatchHandler(useCase app.DispatchUseCase, adminToken string) *DispatchHandler {
	return &DispatchHandler{
		useCase:    useCase,
		adminToken: adminToken,
	}
}

func (h *DispatchHandler) RunTick(c *gin.Context) {
	if !h.authorized(c.GetHeader(AdminTokenHeader)) {
		slog.WarnContext(c.Request.Context(), "manual dispatch rejected",
			"remote_addr", c.ClientIP(),
		)
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: "a valid " + AdminTokenHeader + " header is required",
		})

		return
	}

	// A disconnecting client must not abort a batch whose claims are taken.
	ctx := context.WithoutCancel(c.Request.Context())

	report, err := h.useCase.RunTick(ctx)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(ctx, "manual dispatch tick completed",
		"eligible", report.Eligible,
		"notified", report.Notified,
	)
	c.JSON(http.StatusOK, FromDispatchReport(report))
}

func (h *DispatchHandler) authorized(token string) bool {
	if h.adminToken == "" || token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}

func (h *DispatchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/dispatch/run", h.RunTick)
}
