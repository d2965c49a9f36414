package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContractRepository(db)

	rows := sqlmock.NewRows([]string{"id", "guardian_id", "child_id", "primary_tutor_id", "backup_tutor_id", "status", "created_at", "updated_at"}).
		AddRow("contract-1", "guardian-1", "child-1", "tutor-1", "tutor-2", "ACTIVE", time.Now(), time.Now())
	mock.ExpectQuery("FROM contracts WHERE id = \\$1").
		WithArgs("contract-1").
		WillReturnRows(rows)

	contract, err := repo.GetByID(context.Background(), "contract-1")
	require.NoError(t, err)
	assert.Equal(t, "tutor-1", contract.PrimaryTutorID)
	assert.Equal(t, "tutor-2", contract.BackupTutorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContractRepository(db)

	mock.ExpectQuery("FROM contracts WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
