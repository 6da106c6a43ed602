package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
)

func newMaterialMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestMaterialRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMaterialMock(t)
	defer cleanup()
	repo := NewMaterialRepository(db)

	mock.ExpectExec("INSERT INTO materials").
		WithArgs(sqlmock.AnyArg(), "Class 9", "Algebra Notes", "https://drive.google.com/file/d/abc", models.MaterialTypeDrive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	m := &models.Material{Class: "Class 9", Title: "Algebra Notes", ResourceURL: "https://drive.google.com/file/d/abc", Type: models.MaterialTypeDrive}
	require.NoError(t, repo.Create(context.Background(), m))
	assert.NotEmpty(t, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepositoryListForClass(t *testing.T) {
	db, mock, cleanup := newMaterialMock(t)
	defer cleanup()
	repo := NewMaterialRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class", "title", "resource_url", "type", "created_at"}).
		AddRow("m1", "Class 9", "Algebra Notes", "https://example.com/a.pdf", "pdf", time.Now())
	mock.ExpectQuery("SELECT id, class, title, resource_url, type, created_at FROM materials").
		WithArgs("Class 9").
		WillReturnRows(rows)

	materials, err := repo.ListForClass(context.Background(), "Class 9")
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "Algebra Notes", materials[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepositoryDeleteReturnsClass(t *testing.T) {
	db, mock, cleanup := newMaterialMock(t)
	defer cleanup()
	repo := NewMaterialRepository(db)

	mock.ExpectQuery("DELETE FROM materials").
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"class"}).AddRow("Class 9"))

	class, err := repo.Delete(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Class 9", class)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMaterialMock(t)
	defer cleanup()
	repo := NewMaterialRepository(db)

	mock.ExpectQuery("DELETE FROM materials").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
