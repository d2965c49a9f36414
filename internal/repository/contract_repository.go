package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tutorlink/portal-api/internal/models"
)

// ContractRepository resolves contracts to their assigned tutors. The
// reschedule flow only needs to know which two tutors' availability
// feeds to consult.
type ContractRepository struct {
	db *sqlx.DB
}

// NewContractRepository creates a new contract repository.
func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// GetByID returns one contract.
func (r *ContractRepository) GetByID(ctx context.Context, id string) (*models.Contract, error) {
	const query = `SELECT id, guardian_id, child_id, primary_tutor_id, backup_tutor_id, status, created_at, updated_at
		FROM contracts WHERE id = $1`
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id); err != nil {
		return nil, err
	}
	return &contract, nil
}
