package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/service"
	"github.com/nsthome/institute-api/pkg/response"
)

type exportService interface {
	Roster(ctx context.Context, format service.ExportFormat, status models.ApprovalStatus) (*service.ExportResult, error)
}

// ExportHandler serves admin roster downloads.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Students godoc
// @Summary Export the student roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param status query string false "Filter by approval status"
// @Success 200 {file} binary
// @Router /admin/export/students [get]
func (h *ExportHandler) Students(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	status := models.ApprovalStatus(c.Query("status"))

	result, err := h.exports.Roster(c.Request.Context(), format, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
