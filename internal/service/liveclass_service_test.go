package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type mockLiveClassRepo struct {
	created    []*models.LiveClass
	listResult []models.LiveClass
	lastCutoff time.Time
}

func (m *mockLiveClassRepo) Create(ctx context.Context, lc *models.LiveClass) error {
	if lc.ID == "" {
		lc.ID = "generated"
	}
	m.created = append(m.created, lc)
	return nil
}

func (m *mockLiveClassRepo) ListSince(ctx context.Context, cutoff time.Time) ([]models.LiveClass, error) {
	m.lastCutoff = cutoff
	return m.listResult, nil
}

func TestLiveClassServiceStart(t *testing.T) {
	repo := &mockLiveClassRepo{}
	svc := NewLiveClassService(repo, nil, nil, nil, 2*time.Hour)

	now := time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)
	lc, err := svc.Start(context.Background(), StartLiveClassRequest{
		Class: "Class 10", Title: "Physics Doubts", MeetLink: "https://meet.google.com/abc",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, now, lc.StartTime)
	assert.Equal(t, now.Add(2*time.Hour), lc.EndTime)
	require.Len(t, repo.created, 1)
}

func TestLiveClassServiceStartInvalidClass(t *testing.T) {
	svc := NewLiveClassService(&mockLiveClassRepo{}, nil, nil, nil, 0)

	_, err := svc.Start(context.Background(), StartLiveClassRequest{
		Class: "Class 12", Title: "Physics", MeetLink: "https://meet.google.com/abc",
	}, time.Now())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLiveClassServiceStartInvalidatesCache(t *testing.T) {
	cacheRepo := &memoryCacheRepo{}
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	content := newTestContentService(nil, nil, nil, nil, cache)
	svc := NewLiveClassService(&mockLiveClassRepo{}, content, nil, nil, 2*time.Hour)

	_, err := svc.Start(context.Background(), StartLiveClassRequest{
		Class: "Class 9", Title: "Maths", MeetLink: "https://meet.google.com/xyz",
	}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deleted, ClassContentCacheKey("Class 9"))
}

func TestLiveClassServiceRecent(t *testing.T) {
	repo := &mockLiveClassRepo{listResult: []models.LiveClass{{ID: "lc1"}}}
	svc := NewLiveClassService(repo, nil, nil, nil, 2*time.Hour)

	now := time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)
	sessions, err := svc.Recent(context.Background(), now)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, now.Add(-24*time.Hour), repo.lastCutoff)
}

func TestLiveClassServiceRecentEmpty(t *testing.T) {
	svc := NewLiveClassService(&mockLiveClassRepo{}, nil, nil, nil, 2*time.Hour)

	sessions, err := svc.Recent(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}
