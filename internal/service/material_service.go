package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type materialRepository interface {
	Create(ctx context.Context, m *models.Material) error
	ListAll(ctx context.Context) ([]models.Material, error)
	Delete(ctx context.Context, id string) (string, error)
}

// PublishMaterialRequest is the admin upload payload.
type PublishMaterialRequest struct {
	Class string `json:"class" validate:"required,oneof='Class 5' 'Class 6' 'Class 7' 'Class 8' 'Class 9' 'Class 10'"`
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

// MaterialService publishes and removes study materials. Materials are
// immutable once created; a correction is a delete plus a fresh publish.
type MaterialService struct {
	repo      materialRepository
	content   *ContentService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService constructs a MaterialService.
func NewMaterialService(repo materialRepository, content *ContentService, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{repo: repo, content: content, validator: validate, logger: logger}
}

// Publish classifies the resource URL and inserts the material.
func (s *MaterialService) Publish(ctx context.Context, req PublishMaterialRequest) (*models.Material, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}

	material := &models.Material{
		Class:       req.Class,
		Title:       req.Title,
		ResourceURL: req.URL,
		Type:        models.ClassifyMaterialType(req.URL),
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to publish material")
	}

	if s.content != nil {
		s.content.InvalidateClass(ctx, req.Class)
	}

	s.logger.Info("material published",
		zap.String("class", material.Class),
		zap.String("type", string(material.Type)),
	)
	return material, nil
}

// ListAll returns every material for the admin panel.
func (s *MaterialService) ListAll(ctx context.Context) ([]models.Material, error) {
	materials, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}
	if materials == nil {
		materials = []models.Material{}
	}
	return materials, nil
}

// Delete removes a material.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	class, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete material")
	}

	if s.content != nil {
		s.content.InvalidateClass(ctx, class)
	}

	s.logger.Info("material deleted", zap.String("material_id", id), zap.String("class", class))
	return nil
}
