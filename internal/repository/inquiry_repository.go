package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nsthome/institute-api/internal/models"
)

// InquiryRepository persists contact-form submissions.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository constructs an InquiryRepository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts an inquiry row.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO inquiries (id, name, phone, message, created_at)
        VALUES (:id, :name, :phone, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, inquiry); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// ListAll returns all inquiries newest first.
func (r *InquiryRepository) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	const query = `SELECT id, name, phone, message, created_at FROM inquiries ORDER BY created_at DESC`
	var inquiries []models.Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}
