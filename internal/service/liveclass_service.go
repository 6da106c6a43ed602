package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type liveClassRepository interface {
	Create(ctx context.Context, lc *models.LiveClass) error
	ListSince(ctx context.Context, cutoff time.Time) ([]models.LiveClass, error)
}

// StartLiveClassRequest is the admin broadcast payload. The meet link is
// only required to be non-empty, matching the workflow this replaces.
type StartLiveClassRequest struct {
	Class    string `json:"class" validate:"required,oneof='Class 5' 'Class 6' 'Class 7' 'Class 8' 'Class 9' 'Class 10'"`
	Title    string `json:"title" validate:"required"`
	MeetLink string `json:"meet_link" validate:"required"`
}

// LiveClassService starts broadcast sessions. Sessions are insert-only with
// a fixed duration; nothing prevents overlapping sessions for one class,
// consumers simply follow the most recent start.
type LiveClassService struct {
	repo      liveClassRepository
	content   *ContentService
	validator *validator.Validate
	logger    *zap.Logger
	duration  time.Duration
}

// NewLiveClassService constructs a LiveClassService.
func NewLiveClassService(repo liveClassRepository, content *ContentService, validate *validator.Validate, logger *zap.Logger, duration time.Duration) *LiveClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if duration <= 0 {
		duration = 2 * time.Hour
	}
	return &LiveClassService{repo: repo, content: content, validator: validate, logger: logger, duration: duration}
}

// Start broadcasts a session beginning now and ending after the fixed
// duration.
func (s *LiveClassService) Start(ctx context.Context, req StartLiveClassRequest, now time.Time) (*models.LiveClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid live class payload")
	}

	lc := &models.LiveClass{
		Class:     req.Class,
		Title:     req.Title,
		MeetLink:  req.MeetLink,
		StartTime: now.UTC(),
		EndTime:   now.UTC().Add(s.duration),
	}
	if err := s.repo.Create(ctx, lc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to start live class")
	}

	if s.content != nil {
		s.content.InvalidateClass(ctx, req.Class)
	}

	s.logger.Info("live class started",
		zap.String("class", lc.Class),
		zap.Time("start", lc.StartTime),
		zap.Time("end", lc.EndTime),
	)
	return lc, nil
}

// Recent lists sessions started in the last day for the admin panel.
func (s *LiveClassService) Recent(ctx context.Context, now time.Time) ([]models.LiveClass, error) {
	sessions, err := s.repo.ListSince(ctx, now.UTC().Add(-24*time.Hour))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list live classes")
	}
	if sessions == nil {
		sessions = []models.LiveClass{}
	}
	return sessions, nil
}
