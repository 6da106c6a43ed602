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

type scheduleRepository interface {
	Create(ctx context.Context, entry *models.ScheduleEntry) error
	ListForClass(ctx context.Context, class string) ([]models.ScheduleEntry, error)
	Delete(ctx context.Context, id string) (string, error)
}

// AddScheduleEntryRequest is the admin timetable payload. One row per slot:
// this shape supports per-slot deletion and querying, which a single weekly
// blob cannot.
type AddScheduleEntryRequest struct {
	Class    string `json:"class" validate:"required,oneof='Class 5' 'Class 6' 'Class 7' 'Class 8' 'Class 9' 'Class 10'"`
	Day      string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Subject  string `json:"subject" validate:"required"`
	TimeSlot string `json:"time_slot" validate:"required"`
}

// ScheduleService maintains per-class weekly timetables.
type ScheduleService struct {
	repo      scheduleRepository
	content   *ContentService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(repo scheduleRepository, content *ContentService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, content: content, validator: validate, logger: logger}
}

// AddEntry inserts one timetable slot.
func (s *ScheduleService) AddEntry(ctx context.Context, req AddScheduleEntryRequest) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	entry := &models.ScheduleEntry{
		Class:    req.Class,
		Day:      req.Day,
		Subject:  req.Subject,
		TimeSlot: req.TimeSlot,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add schedule entry")
	}

	if s.content != nil {
		s.content.InvalidateClass(ctx, req.Class)
	}

	s.logger.Info("schedule entry added",
		zap.String("class", entry.Class),
		zap.String("day", entry.Day),
	)
	return entry, nil
}

// ListForClass returns the timetable for one class, ordered by weekday and
// time slot.
func (s *ScheduleService) ListForClass(ctx context.Context, class string) ([]models.ScheduleEntry, error) {
	if !models.IsClassLabel(class) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown class label")
	}
	entries, err := s.repo.ListForClass(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	sortScheduleEntries(entries)
	return entries, nil
}

// DeleteEntry removes one timetable slot.
func (s *ScheduleService) DeleteEntry(ctx context.Context, id string) error {
	class, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule entry")
	}

	if s.content != nil {
		s.content.InvalidateClass(ctx, class)
	}

	s.logger.Info("schedule entry deleted", zap.String("entry_id", id), zap.String("class", class))
	return nil
}
