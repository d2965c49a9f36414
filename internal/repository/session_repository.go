package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tutorlink/portal-api/internal/models"
)

// SessionRepository reads the guardian session feed. The feed contract
// allows an unfiltered superset: status filtering and exclusion of the
// booking under rescheduling happen in the engine.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// ListByChild returns all sessions recorded for a child.
func (r *SessionRepository) ListByChild(ctx context.Context, childID string) ([]models.Session, error) {
	const query = `SELECT id, contract_id, child_id, session_date, start_time, end_time, status, created_at, updated_at
		FROM sessions WHERE child_id = $1 ORDER BY session_date, start_time`
	sessions := []models.Session{}
	if err := r.db.SelectContext(ctx, &sessions, query, childID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// GetByID returns one session by its booking identifier.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	const query = `SELECT id, contract_id, child_id, session_date, start_time, end_time, status, created_at, updated_at
		FROM sessions WHERE id = $1`
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}
