package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
	"github.com/nsthome/institute-api/pkg/response"
)

type dashboardContentService interface {
	StudentDashboard(ctx context.Context, studentID string, now time.Time) (*models.DashboardView, error)
}

// DashboardHandler serves the student dashboard. Clients poll this endpoint
// on a fixed interval; each call re-reads approval status so an admin
// decision is visible within one cycle.
type DashboardHandler struct {
	content dashboardContentService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(content dashboardContentService) *DashboardHandler {
	return &DashboardHandler{content: content}
}

// Student godoc
// @Summary Student dashboard content
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /student/dashboard [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	view, err := h.content.StudentDashboard(c.Request.Context(), claims.UserID, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}
