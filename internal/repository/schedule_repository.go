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

// ScheduleRepository manages persistence for weekly timetable entries.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts one timetable entry.
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO schedules (id, class, day, subject, time_slot, created_at)
        VALUES (:id, :class, :day, :subject, :time_slot, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}
	return nil
}

// ListForClass returns the timetable for one class label. Day ordering is
// applied in the service; the query orders by insertion as a stable base.
func (r *ScheduleRepository) ListForClass(ctx context.Context, class string) ([]models.ScheduleEntry, error) {
	const query = `SELECT id, class, day, subject, time_slot, created_at FROM schedules
        WHERE class = $1 ORDER BY created_at ASC`
	var entries []models.ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, class); err != nil {
		return nil, fmt.Errorf("list schedule for class: %w", err)
	}
	return entries, nil
}

// Delete removes one timetable entry and reports its class label for cache
// invalidation.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) (string, error) {
	const query = `DELETE FROM schedules WHERE id = $1 RETURNING class`
	var class string
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if err == sql.ErrNoRows {
			return "", sql.ErrNoRows
		}
		return "", fmt.Errorf("delete schedule entry: %w", err)
	}
	return class, nil
}
