package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/middleware"
	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type dashboardServiceMock struct {
	resp   *models.DashboardView
	err    error
	lastID string
}

func (m *dashboardServiceMock) StudentDashboard(ctx context.Context, studentID string, now time.Time) (*models.DashboardView, error) {
	m.lastID = studentID
	return m.resp, m.err
}

func TestDashboardHandlerStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{
		resp: &models.DashboardView{
			Status: models.StatusApproved,
			Class:  "Class 8",
			Content: &models.ClassContent{
				Materials: []models.Material{},
				Schedule:  []models.ScheduleEntry{},
			},
		},
	}
	handler := NewDashboardHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/student/dashboard", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "s1", Role: models.RoleStudent})

	handler.Student(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", mockSvc.lastID)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var envelope struct {
		Data models.DashboardView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, models.StatusApproved, envelope.Data.Status)
	assert.NotNil(t, envelope.Data.Content)
}

func TestDashboardHandlerStudentPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{
		resp: &models.DashboardView{Status: models.StatusPending, Class: "Class 8"},
	}
	handler := NewDashboardHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/student/dashboard", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "s1", Role: models.RoleStudent})

	handler.Student(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.DashboardView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, models.StatusPending, envelope.Data.Status)
	assert.Nil(t, envelope.Data.Content)
}

func TestDashboardHandlerStudentNoClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&dashboardServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/student/dashboard", nil)
	c.Request = req

	handler.Student(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardHandlerStudentDeleted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")}
	handler := NewDashboardHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/student/dashboard", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "gone", Role: models.RoleStudent})

	handler.Student(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
