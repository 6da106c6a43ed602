package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nsthome/institute-api/internal/models"
)

// ErrDuplicatePhone signals a unique-index violation on students.phone. The
// index is the authoritative duplicate check; the service-level pre-check
// only exists for a friendlier error message.
var ErrDuplicatePhone = errors.New("phone already registered")

const pqUniqueViolation = "23505"

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters, newest first.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	base := "FROM students WHERE 1=1"
	var args []interface{}

	if filter.Status != "" {
		base += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}
	if filter.Class != "" {
		base += fmt.Sprintf(" AND class = $%d", len(args)+1)
		args = append(args, filter.Class)
	}
	if filter.Search != "" {
		base += fmt.Sprintf(" AND (LOWER(name) LIKE $%d OR phone LIKE $%d)", len(args)+1, len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT id, name, phone, class, status, created_at %s ORDER BY created_at DESC LIMIT %d OFFSET %d`, base, size, offset)

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	countQuery := "SELECT COUNT(*) " + base
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, name, phone, class, status, created_at FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByPhone fetches a student by phone regardless of class. Used by the
// registration duplicate pre-check.
func (r *StudentRepository) FindByPhone(ctx context.Context, phone string) (*models.Student, error) {
	const query = `SELECT id, name, phone, class, status, created_at FROM students WHERE phone = $1 LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, phone); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByIdentity looks up a student by the login tuple: phone, class and
// case-insensitive name. At most one row can match since phone is unique.
func (r *StudentRepository) FindByIdentity(ctx context.Context, name, phone, class string) (*models.Student, error) {
	const query = `SELECT id, name, phone, class, status, created_at FROM students
        WHERE phone = $1 AND class = $2 AND LOWER(name) = LOWER($3) LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, phone, class, strings.TrimSpace(name)); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student record. A unique violation on phone is
// reported as ErrDuplicatePhone.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO students (id, name, phone, class, status, created_at)
        VALUES (:id, :name, :phone, :class, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateStatus sets the approval status for a student.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id string, status models.ApprovalStatus) error {
	const query = `UPDATE students SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update student status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete hard-deletes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM students WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
