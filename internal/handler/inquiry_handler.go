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

type inquiryService interface {
	Submit(ctx context.Context, req service.SubmitInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
}

// InquiryHandler exposes the public contact form and the admin inbox.
type InquiryHandler struct {
	inquiries inquiryService
}

// NewInquiryHandler constructs InquiryHandler.
func NewInquiryHandler(inquiries inquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body service.SubmitInquiryRequest true "Inquiry payload"
// @Success 201 {object} response.Envelope
// @Router /contact [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req service.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	inquiry, err := h.inquiries.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inquiry)
}

// List godoc
// @Summary List contact inquiries
// @Tags Inquiries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiries.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, inquiries, nil)
}
