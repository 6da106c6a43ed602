package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type inquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	ListAll(ctx context.Context) ([]models.Inquiry, error)
}

// SubmitInquiryRequest is the public contact-form payload.
type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// InquiryService persists contact-form submissions for admins to review.
type InquiryService struct {
	repo      inquiryRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInquiryService constructs an InquiryService.
func NewInquiryService(repo inquiryRepository, validate *validator.Validate, logger *zap.Logger) *InquiryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{repo: repo, validator: validate, logger: logger}
}

// Submit stores one contact-form message.
func (s *InquiryService) Submit(ctx context.Context, req SubmitInquiryRequest) (*models.Inquiry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid inquiry payload")
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit inquiry")
	}

	s.logger.Info("inquiry submitted", zap.String("inquiry_id", inquiry.ID))
	return inquiry, nil
}

// List returns all inquiries for the admin panel.
func (s *InquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list inquiries")
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	return inquiries, nil
}
