package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type contentStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type contentLiveClassRepository interface {
	LatestForClass(ctx context.Context, class string) (*models.LiveClass, error)
}

type contentMaterialRepository interface {
	ListForClass(ctx context.Context, class string) ([]models.Material, error)
}

type contentScheduleRepository interface {
	ListForClass(ctx context.Context, class string) ([]models.ScheduleEntry, error)
}

// classContentCacheEntry is what gets cached per class: raw content without
// the joinability flag, which is time-dependent and recomputed per request.
type classContentCacheEntry struct {
	LiveSession *models.LiveClass      `json:"live_session"`
	Materials   []models.Material      `json:"materials"`
	Schedule    []models.ScheduleEntry `json:"schedule"`
}

// ContentService resolves what an identified student may see. The status
// check runs against the store on every call so that an admin approval or
// rejection is observed within one client poll cycle; only the class-scoped
// content below the gate is cacheable.
type ContentService struct {
	students    contentStudentRepository
	liveClasses contentLiveClassRepository
	materials   contentMaterialRepository
	schedules   contentScheduleRepository
	cache       *CacheService
	logger      *zap.Logger
}

// NewContentService constructs a ContentService. cache may be nil.
func NewContentService(
	students contentStudentRepository,
	liveClasses contentLiveClassRepository,
	materials contentMaterialRepository,
	schedules contentScheduleRepository,
	cache *CacheService,
	logger *zap.Logger,
) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		students:    students,
		liveClasses: liveClasses,
		materials:   materials,
		schedules:   schedules,
		cache:       cache,
		logger:      logger,
	}
}

// ClassContentCacheKey returns the cache key holding resolved content for a
// class label. Admin mutations invalidate through the same key.
func ClassContentCacheKey(class string) string {
	return fmt.Sprintf("content:class:%s", class)
}

// StudentDashboard builds the dashboard view for one student. A pending or
// rejected student gets status only; a deleted student gets not found.
func (s *ContentService) StudentDashboard(ctx context.Context, studentID string, now time.Time) (*models.DashboardView, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	view := &models.DashboardView{Status: student.Status, Class: student.Class}
	if student.Status != models.StatusApproved {
		return view, nil
	}

	content, err := s.Resolve(ctx, student.Class, now)
	if err != nil {
		return nil, err
	}
	view.Content = content
	return view, nil
}

// Resolve computes the visible content for one class label at the given
// time. Pure with respect to the store: it performs no writes.
func (s *ContentService) Resolve(ctx context.Context, class string, now time.Time) (*models.ClassContent, error) {
	entry, err := s.loadClassContent(ctx, class)
	if err != nil {
		return nil, err
	}

	return &models.ClassContent{
		LiveSession: entry.LiveSession,
		IsJoinable:  entry.LiveSession.IsActiveAt(now),
		Materials:   entry.Materials,
		Schedule:    entry.Schedule,
	}, nil
}

func (s *ContentService) loadClassContent(ctx context.Context, class string) (*classContentCacheEntry, error) {
	key := ClassContentCacheKey(class)

	var cached classContentCacheEntry
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	liveSession, err := s.liveClasses.LatestForClass(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load live session")
	}

	materials, err := s.materials.ListForClass(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load materials")
	}
	if materials == nil {
		materials = []models.Material{}
	}

	schedule, err := s.schedules.ListForClass(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	if schedule == nil {
		schedule = []models.ScheduleEntry{}
	}
	sortScheduleEntries(schedule)

	entry := &classContentCacheEntry{
		LiveSession: liveSession,
		Materials:   materials,
		Schedule:    schedule,
	}

	if err := s.cache.Set(ctx, key, entry, 0); err != nil {
		s.logger.Warn("failed to cache class content", zap.String("class", class), zap.Error(err))
	}

	return entry, nil
}

// InvalidateClass drops the cached content for a class label. Called by the
// admin services after every publish or delete so students do not wait out
// the TTL.
func (s *ContentService) InvalidateClass(ctx context.Context, class string) {
	if err := s.cache.Invalidate(ctx, ClassContentCacheKey(class)); err != nil {
		s.logger.Warn("failed to invalidate class content", zap.String("class", class), zap.Error(err))
	}
}

func sortScheduleEntries(entries []models.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := models.ScheduleDayRank(entries[i].Day), models.ScheduleDayRank(entries[j].Day)
		if ri != rj {
			return ri < rj
		}
		return entries[i].TimeSlot < entries[j].TimeSlot
	})
}
