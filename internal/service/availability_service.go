package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tutorlink/portal-api/internal/dto"
	"github.com/tutorlink/portal-api/internal/models"
	"github.com/tutorlink/portal-api/internal/schedule"
	appErrors "github.com/tutorlink/portal-api/pkg/errors"
)

type availabilityRepository interface {
	ListByTutor(ctx context.Context, tutorID string) ([]models.AvailabilityWindow, error)
	GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error)
	Create(ctx context.Context, window *models.AvailabilityWindow) error
	Update(ctx context.Context, window *models.AvailabilityWindow) error
	Delete(ctx context.Context, id string) error
}

// AvailabilityService manages tutors' recurring availability windows.
type AvailabilityService struct {
	repo      availabilityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs the service.
func NewAvailabilityService(repo availabilityRepository, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{repo: repo, validator: validate, logger: logger}
}

// UpsertAvailabilityRequest describes a window create/update payload.
type UpsertAvailabilityRequest struct {
	DaysOfWeek     int     `json:"days_of_week" validate:"required,min=1,max=127"`
	AvailableFrom  string  `json:"available_from" validate:"required"`
	AvailableUntil string  `json:"available_until" validate:"required"`
	EffectiveFrom  string  `json:"effective_from" validate:"required,datetime=2006-01-02"`
	EffectiveUntil *string `json:"effective_until,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// List returns a tutor's availability windows, with the weekday mask
// rendered for display alongside each record.
func (s *AvailabilityService) List(ctx context.Context, tutorID string) ([]models.AvailabilityWindow, error) {
	windows, err := s.repo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list availability windows")
	}
	for i := range windows {
		windows[i].DaysLabel = schedule.DayMask(windows[i].DaysOfWeek).Format()
	}
	return windows, nil
}

// Create registers a new availability window for a tutor.
func (s *AvailabilityService) Create(ctx context.Context, tutorID string, req UpsertAvailabilityRequest) (*models.AvailabilityWindow, error) {
	window, err := s.windowFromRequest(tutorID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, window); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create availability window")
	}
	return window, nil
}

// Update modifies an existing window of the tutor.
func (s *AvailabilityService) Update(ctx context.Context, tutorID, windowID string, req UpsertAvailabilityRequest) (*models.AvailabilityWindow, error) {
	existing, err := s.ownedWindow(ctx, tutorID, windowID)
	if err != nil {
		return nil, err
	}

	window, err := s.windowFromRequest(tutorID, req)
	if err != nil {
		return nil, err
	}
	window.ID = existing.ID
	window.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, window); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update availability window")
	}
	return window, nil
}

// Delete removes a window of the tutor.
func (s *AvailabilityService) Delete(ctx context.Context, tutorID, windowID string) error {
	if _, err := s.ownedWindow(ctx, tutorID, windowID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, windowID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete availability window")
	}
	return nil
}

// ImportResult summarises a bulk feed import.
type ImportResult struct {
	Imported []models.AvailabilityWindow `json:"imported"`
	Skipped  int                         `json:"skipped"`
}

// Import ingests loosely-shaped records from an external scheduling
// tool. Records that cannot be normalised, belong to another tutor, or
// carry an inconsistent clock range are counted and skipped; one bad
// record never fails the batch.
func (s *AvailabilityService) Import(ctx context.Context, tutorID string, records []map[string]interface{}) (*ImportResult, error) {
	result := &ImportResult{Imported: []models.AvailabilityWindow{}}
	for _, record := range records {
		window, err := dto.NormalizeWindow(record)
		if err != nil {
			s.logger.Warn("skipping unnormalizable availability record", zap.String("tutor_id", tutorID), zap.Error(err))
			result.Skipped++
			continue
		}
		if window.TutorID != tutorID {
			s.logger.Warn("skipping availability record for another tutor",
				zap.String("expected", tutorID), zap.String("got", window.TutorID))
			result.Skipped++
			continue
		}
		if err := validateClockRange(window.AvailableFrom, window.AvailableUntil); err != nil {
			s.logger.Warn("skipping availability record with bad clock range", zap.Error(err))
			result.Skipped++
			continue
		}
		if err := s.repo.Create(ctx, &window); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store imported window")
		}
		result.Imported = append(result.Imported, window)
	}
	return result, nil
}

func (s *AvailabilityService) ownedWindow(ctx context.Context, tutorID, windowID string) (*models.AvailabilityWindow, error) {
	window, err := s.repo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "availability window not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load availability window")
	}
	if window.TutorID != tutorID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "availability window not found")
	}
	return window, nil
}

func (s *AvailabilityService) windowFromRequest(tutorID string, req UpsertAvailabilityRequest) (*models.AvailabilityWindow, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability payload")
	}
	if err := validateClockRange(req.AvailableFrom, req.AvailableUntil); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "effective_from must be formatted as YYYY-MM-DD")
	}

	window := &models.AvailabilityWindow{
		TutorID:        tutorID,
		DaysOfWeek:     req.DaysOfWeek,
		AvailableFrom:  req.AvailableFrom,
		AvailableUntil: req.AvailableUntil,
		EffectiveFrom:  effectiveFrom,
		DaysLabel:      schedule.DayMask(req.DaysOfWeek).Format(),
	}
	if req.EffectiveUntil != nil {
		until, err := time.Parse("2006-01-02", *req.EffectiveUntil)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "effective_until must be formatted as YYYY-MM-DD")
		}
		if until.Before(effectiveFrom) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "effective_until must not precede effective_from")
		}
		window.EffectiveUntil = &until
	}
	return window, nil
}

func validateClockRange(from, until string) error {
	fromMin, err := schedule.ParseClock(from)
	if err != nil {
		return errors.New("available_from must be formatted as HH:MM")
	}
	untilMin, err := schedule.ParseClock(until)
	if err != nil {
		return errors.New("available_until must be formatted as HH:MM")
	}
	if fromMin >= untilMin {
		return errors.New("available_from must be before available_until")
	}
	return nil
}
