package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type mockExportStudentRepo struct {
	listResult []models.Student
	lastFilter models.StudentFilter
}

func (m *mockExportStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	m.lastFilter = filter
	return m.listResult, len(m.listResult), nil
}

func TestExportServiceRosterCSV(t *testing.T) {
	repo := &mockExportStudentRepo{listResult: []models.Student{
		{Name: "Riya Das", Phone: "9000000001", Class: "Class 8", Status: models.StatusApproved, CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)},
	}}
	svc := NewExportService(repo, nil)

	result, err := svc.Roster(context.Background(), ExportFormatCSV, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Content)
	assert.Contains(t, body, "Name,Phone,Class,Status,Registered")
	assert.Contains(t, body, "Riya Das")
	assert.Contains(t, body, "approved")
}

func TestExportServiceRosterPDF(t *testing.T) {
	repo := &mockExportStudentRepo{listResult: []models.Student{
		{Name: "Riya Das", Phone: "9000000001", Class: "Class 8", Status: models.StatusPending, CreatedAt: time.Now()},
	}}
	svc := NewExportService(repo, nil)

	result, err := svc.Roster(context.Background(), ExportFormatPDF, "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportServiceRosterStatusFilter(t *testing.T) {
	repo := &mockExportStudentRepo{}
	svc := NewExportService(repo, nil)

	_, err := svc.Roster(context.Background(), ExportFormatCSV, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, repo.lastFilter.Status)
}

func TestExportServiceRosterBadInput(t *testing.T) {
	svc := NewExportService(&mockExportStudentRepo{}, nil)

	_, err := svc.Roster(context.Background(), "xlsx", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Roster(context.Background(), ExportFormatCSV, "banned")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
