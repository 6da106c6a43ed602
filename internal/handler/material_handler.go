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

type materialService interface {
	Publish(ctx context.Context, req service.PublishMaterialRequest) (*models.Material, error)
	ListAll(ctx context.Context) ([]models.Material, error)
	Delete(ctx context.Context, id string) error
}

// MaterialHandler exposes the admin material endpoints.
type MaterialHandler struct {
	materials materialService
}

// NewMaterialHandler constructs MaterialHandler.
func NewMaterialHandler(materials materialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// Publish godoc
// @Summary Publish a study material
// @Tags Materials
// @Accept json
// @Produce json
// @Param request body service.PublishMaterialRequest true "Material payload"
// @Success 201 {object} response.Envelope
// @Router /admin/materials [post]
func (h *MaterialHandler) Publish(c *gin.Context) {
	var req service.PublishMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	material, err := h.materials.Publish(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, material)
}

// List godoc
// @Summary List all materials
// @Tags Materials
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.materials.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, materials, nil)
}

// Delete godoc
// @Summary Delete a material
// @Tags Materials
// @Param id path string true "Material ID"
// @Success 204
// @Router /admin/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.materials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
