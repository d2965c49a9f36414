package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/portal-api/internal/models"
)

func TestSessionRepositoryListByChild(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "contract_id", "child_id", "session_date", "start_time", "end_time", "status", "created_at", "updated_at"}).
		AddRow("s1", "c1", "child-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "17:30", "19:00", "SCHEDULED", time.Now(), time.Now()).
		AddRow("s2", "c1", "child-1", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), "16:00", "17:30", "CANCELLED", time.Now(), time.Now())
	mock.ExpectQuery("FROM sessions WHERE child_id = \\$1").
		WithArgs("child-1").
		WillReturnRows(rows)

	sessions, err := repo.ListByChild(context.Background(), "child-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// The feed returns the unfiltered superset; cancelled rows included.
	assert.Equal(t, models.SessionStatusCancelled, sessions[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "contract_id", "child_id", "session_date", "start_time", "end_time", "status", "created_at", "updated_at"}).
		AddRow("s1", "c1", "child-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "17:30", "19:00", "SCHEDULED", time.Now(), time.Now())
	mock.ExpectQuery("FROM sessions WHERE id = \\$1").
		WithArgs("s1").
		WillReturnRows(rows)

	session, err := repo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "child-1", session.ChildID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery("FROM sessions WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
