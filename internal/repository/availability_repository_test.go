package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/portal-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAvailabilityRepositoryListByTutor(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAvailabilityRepository(db)

	rows := sqlmock.NewRows([]string{"id", "tutor_id", "days_of_week", "available_from", "available_until", "effective_from", "effective_until", "created_at", "updated_at"}).
		AddRow("w1", "tutor-1", 42, "16:00", "21:00", time.Now(), nil, time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, tutor_id, days_of_week, available_from, available_until, effective_from, effective_until, created_at, updated_at\\s+FROM availability_windows WHERE tutor_id = \\$1").
		WithArgs("tutor-1").
		WillReturnRows(rows)

	windows, err := repo.ListByTutor(context.Background(), "tutor-1")
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 42, windows[0].DaysOfWeek)
	assert.Nil(t, windows[0].EffectiveUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepositoryListByTutorEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAvailabilityRepository(db)

	mock.ExpectQuery("FROM availability_windows WHERE tutor_id = \\$1").
		WithArgs("tutor-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tutor_id", "days_of_week", "available_from", "available_until", "effective_from", "effective_until", "created_at", "updated_at"}))

	windows, err := repo.ListByTutor(context.Background(), "tutor-2")
	require.NoError(t, err)
	assert.Empty(t, windows)
	assert.NotNil(t, windows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepositoryCreateAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAvailabilityRepository(db)

	mock.ExpectExec("INSERT INTO availability_windows").
		WillReturnResult(sqlmock.NewResult(1, 1))

	window := &models.AvailabilityWindow{
		TutorID:        "tutor-1",
		DaysOfWeek:     2 | 8 | 32,
		AvailableFrom:  "16:00",
		AvailableUntil: "21:00",
		EffectiveFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), window))
	assert.NotEmpty(t, window.ID)
	assert.False(t, window.UpdatedAt.IsZero())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM availability_windows WHERE id = $1")).
		WithArgs(window.ID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Delete(context.Background(), window.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAvailabilityRepository(db)

	mock.ExpectExec("UPDATE availability_windows SET").
		WillReturnResult(sqlmock.NewResult(1, 1))

	window := &models.AvailabilityWindow{ID: "w1", TutorID: "tutor-1", AvailableFrom: "16:00", AvailableUntil: "18:00"}
	require.NoError(t, repo.Update(context.Background(), window))
	assert.NoError(t, mock.ExpectationsWereMet())
}
