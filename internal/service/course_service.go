package service

import (
	"context"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type courseRepository interface {
	ListAll(ctx context.Context) ([]models.Course, error)
}

// CourseService serves the public course catalog.
type CourseService struct {
	repo courseRepository
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository) *CourseService {
	return &CourseService{repo: repo}
}

// List returns the full catalog.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}
