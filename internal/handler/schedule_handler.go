package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/service"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
	"github.com/nsthome/institute-api/pkg/response"
)

type scheduleService interface {
	AddEntry(ctx context.Context, req service.AddScheduleEntryRequest) (*models.ScheduleEntry, error)
	ListForClass(ctx context.Context, class string) ([]models.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// ScheduleHandler exposes the admin timetable endpoints.
type ScheduleHandler struct {
	schedules scheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// Add godoc
// @Summary Add a timetable entry
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body service.AddScheduleEntryRequest true "Schedule payload"
// @Success 201 {object} response.Envelope
// @Router /admin/schedules [post]
func (h *ScheduleHandler) Add(c *gin.Context) {
	var req service.AddScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	entry, err := h.schedules.AddEntry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// List godoc
// @Summary List the timetable for one class
// @Tags Schedules
// @Produce json
// @Param class query string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /admin/schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	entries, err := h.schedules.ListForClass(c.Request.Context(), c.Query("class"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Delete godoc
// @Summary Delete a timetable entry
// @Tags Schedules
// @Param id path string true "Entry ID"
// @Success 204
// @Router /admin/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedules.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
