package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nsthome/institute-api/internal/models"
)

// LiveClassRepository manages persistence for broadcast sessions. The
// backing table is named classes for compatibility with the original data
// layout.
type LiveClassRepository struct {
	db *sqlx.DB
}

// NewLiveClassRepository constructs a LiveClassRepository.
func NewLiveClassRepository(db *sqlx.DB) *LiveClassRepository {
	return &LiveClassRepository{db: db}
}

// Create inserts a broadcast session row.
func (r *LiveClassRepository) Create(ctx context.Context, lc *models.LiveClass) error {
	if lc.ID == "" {
		lc.ID = uuid.NewString()
	}
	const query = `INSERT INTO classes (id, class, title, meet_link, start_time, end_time)
        VALUES (:id, :class, :title, :meet_link, :start_time, :end_time)`
	if _, err := r.db.NamedExecContext(ctx, query, lc); err != nil {
		return fmt.Errorf("create live class: %w", err)
	}
	return nil
}

// LatestForClass returns the session with the most recent start time for a
// class label, or nil when the class has never been broadcast to. Rows
// accumulate; only the newest one is ever consulted.
func (r *LiveClassRepository) LatestForClass(ctx context.Context, class string) (*models.LiveClass, error) {
	const query = `SELECT id, class, title, meet_link, start_time, end_time FROM classes
        WHERE class = $1 ORDER BY start_time DESC LIMIT 1`
	var lc models.LiveClass
	if err := r.db.GetContext(ctx, &lc, query, class); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest live class: %w", err)
	}
	return &lc, nil
}

// ListSince returns sessions started at or after the cutoff, newest first.
// Used by the admin panel to show recent broadcasts.
func (r *LiveClassRepository) ListSince(ctx context.Context, cutoff time.Time) ([]models.LiveClass, error) {
	const query = `SELECT id, class, title, meet_link, start_time, end_time FROM classes
        WHERE start_time >= $1 ORDER BY start_time DESC`
	var sessions []models.LiveClass
	if err := r.db.SelectContext(ctx, &sessions, query, cutoff); err != nil {
		return nil, fmt.Errorf("list live classes: %w", err)
	}
	return sessions, nil
}
