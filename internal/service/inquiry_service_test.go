package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
	appErrors "github.com/nsthome/institute-api/pkg/errors"
)

type mockInquiryRepo struct {
	created    []*models.Inquiry
	listResult []models.Inquiry
}

func (m *mockInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = "generated"
	}
	m.created = append(m.created, inquiry)
	return nil
}

func (m *mockInquiryRepo) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	return m.listResult, nil
}

func TestInquiryServiceSubmit(t *testing.T) {
	repo := &mockInquiryRepo{}
	svc := NewInquiryService(repo, nil, nil)

	inquiry, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		Name: "Parent", Phone: "9000000005", Message: "Do you take Class 6 admissions mid-year?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	require.Len(t, repo.created, 1)
}

func TestInquiryServiceSubmitMissingFields(t *testing.T) {
	svc := NewInquiryService(&mockInquiryRepo{}, nil, nil)

	_, err := svc.Submit(context.Background(), SubmitInquiryRequest{Name: "Parent"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestInquiryServiceListEmpty(t *testing.T) {
	svc := NewInquiryService(&mockInquiryRepo{}, nil, nil)

	inquiries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, inquiries)
	assert.Empty(t, inquiries)
}
