package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nsthome/institute-api/internal/models"
)

// MaterialRepository manages persistence for study materials.
type MaterialRepository struct {
	db *sqlx.DB
}

// NewMaterialRepository constructs a MaterialRepository.
func NewMaterialRepository(db *sqlx.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create inserts a material row.
func (r *MaterialRepository) Create(ctx context.Context, m *models.Material) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO materials (id, class, title, resource_url, type, created_at)
        VALUES (:id, :class, :title, :resource_url, :type, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// ListForClass returns all materials for one class label, newest first. No
// pagination: full materialization is fine at this domain's size.
func (r *MaterialRepository) ListForClass(ctx context.Context, class string) ([]models.Material, error) {
	const query = `SELECT id, class, title, resource_url, type, created_at FROM materials
        WHERE class = $1 ORDER BY created_at DESC`
	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, query, class); err != nil {
		return nil, fmt.Errorf("list materials for class: %w", err)
	}
	return materials, nil
}

// ListAll returns every material, newest first, for the admin panel.
func (r *MaterialRepository) ListAll(ctx context.Context) ([]models.Material, error) {
	const query = `SELECT id, class, title, resource_url, type, created_at FROM materials
        ORDER BY created_at DESC`
	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, query); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// Delete removes a material row and reports which class label it belonged
// to, so the caller can invalidate that class's cached content.
func (r *MaterialRepository) Delete(ctx context.Context, id string) (string, error) {
	const query = `DELETE FROM materials WHERE id = $1 RETURNING class`
	var class string
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if err == sql.ErrNoRows {
			return "", sql.ErrNoRows
		}
		return "", fmt.Errorf("delete material: %w", err)
	}
	return class, nil
}
