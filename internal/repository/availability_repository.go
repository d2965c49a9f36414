package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorlink/portal-api/internal/models"
)

// AvailabilityRepository provides persistence for tutor availability
// windows. ListByTutor doubles as the availability feed consumed by the
// reschedule flow: an empty result is a valid, meaningful answer.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository creates a new availability repository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListByTutor returns all availability windows for a tutor.
func (r *AvailabilityRepository) ListByTutor(ctx context.Context, tutorID string) ([]models.AvailabilityWindow, error) {
	const query = `SELECT id, tutor_id, days_of_week, available_from, available_until, effective_from, effective_until, created_at, updated_at
		FROM availability_windows WHERE tutor_id = $1 ORDER BY effective_from, available_from`
	windows := []models.AvailabilityWindow{}
	if err := r.db.SelectContext(ctx, &windows, query, tutorID); err != nil {
		return nil, fmt.Errorf("list availability windows: %w", err)
	}
	return windows, nil
}

// GetByID returns one availability window.
func (r *AvailabilityRepository) GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error) {
	const query = `SELECT id, tutor_id, days_of_week, available_from, available_until, effective_from, effective_until, created_at, updated_at
		FROM availability_windows WHERE id = $1`
	var window models.AvailabilityWindow
	if err := r.db.GetContext(ctx, &window, query, id); err != nil {
		return nil, err
	}
	return &window, nil
}

// Create inserts a new availability window.
func (r *AvailabilityRepository) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	if window.ID == "" {
		window.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if window.CreatedAt.IsZero() {
		window.CreatedAt = now
	}
	window.UpdatedAt = now

	const query = `INSERT INTO availability_windows (id, tutor_id, days_of_week, available_from, available_until, effective_from, effective_until, created_at, updated_at)
		VALUES (:id, :tutor_id, :days_of_week, :available_from, :available_until, :effective_from, :effective_until, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, window); err != nil {
		return fmt.Errorf("create availability window: %w", err)
	}
	return nil
}

// Update modifies an existing availability window.
func (r *AvailabilityRepository) Update(ctx context.Context, window *models.AvailabilityWindow) error {
	window.UpdatedAt = time.Now().UTC()
	const query = `UPDATE availability_windows SET days_of_week = :days_of_week, available_from = :available_from, available_until = :available_until, effective_from = :effective_from, effective_until = :effective_until, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, window); err != nil {
		return fmt.Errorf("update availability window: %w", err)
	}
	return nil
}

// Delete removes an availability window.
func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM availability_windows WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete availability window: %w", err)
	}
	return nil
}
