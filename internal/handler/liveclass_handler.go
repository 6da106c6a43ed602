package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/service"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
	"github.com/nsthome/institute-api/pkg/response"
)

type liveClassService interface {
	Start(ctx context.Context, req service.StartLiveClassRequest, now time.Time) (*models.LiveClass, error)
	Recent(ctx context.Context, now time.Time) ([]models.LiveClass, error)
}

// LiveClassHandler exposes the admin broadcast endpoints.
type LiveClassHandler struct {
	liveClasses liveClassService
}

// NewLiveClassHandler constructs LiveClassHandler.
func NewLiveClassHandler(liveClasses liveClassService) *LiveClassHandler {
	return &LiveClassHandler{liveClasses: liveClasses}
}

// Start godoc
// @Summary Start a live class broadcast
// @Tags Live Classes
// @Accept json
// @Produce json
// @Param request body service.StartLiveClassRequest true "Broadcast payload"
// @Success 201 {object} response.Envelope
// @Router /admin/live-classes [post]
func (h *LiveClassHandler) Start(c *gin.Context) {
	var req service.StartLiveClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	lc, err := h.liveClasses.Start(c.Request.Context(), req, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lc)
}

// Recent godoc
// @Summary List recent broadcasts
// @Tags Live Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/live-classes [get]
func (h *LiveClassHandler) Recent(c *gin.Context) {
	sessions, err := h.liveClasses.Recent(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}
