package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tutorlink/portal-api/internal/models"
	"github.com/tutorlink/portal-api/internal/schedule"
	appErrors "github.com/tutorlink/portal-api/pkg/errors"
	"github.com/tutorlink/portal-api/pkg/export"
)

type contractReader interface {
	GetByID(ctx context.Context, id string) (*models.Contract, error)
}

type sessionReader interface {
	ListByChild(ctx context.Context, childID string) ([]models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
}

type availabilityReader interface {
	ListByTutor(ctx context.Context, tutorID string) ([]models.AvailabilityWindow, error)
}

type snapshotCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string)
}

// RescheduleService drives the makeup-session flow: it assembles one
// snapshot of contract, tutors' availability and the child's sessions,
// then computes weekly slot calendars and validates the guardian's
// final pick against that snapshot. All slot reasoning lives in the
// schedule package; this service only feeds it.
type RescheduleService struct {
	contracts     contractReader
	sessions      sessionReader
	availability  availabilityReader
	cache         snapshotCache
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
	snapshotTTL   time.Duration
	maxWeekOffset int
}

// RescheduleServiceParams bundles constructor dependencies.
type RescheduleServiceParams struct {
	Contracts     contractReader
	Sessions      sessionReader
	Availability  availabilityReader
	Cache         snapshotCache
	Metrics       *MetricsService
	Validator     *validator.Validate
	Logger        *zap.Logger
	SnapshotTTL   time.Duration
	MaxWeekOffset int
}

// NewRescheduleService constructs the service.
func NewRescheduleService(params RescheduleServiceParams) *RescheduleService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.SnapshotTTL <= 0 {
		params.SnapshotTTL = 5 * time.Minute
	}
	if params.MaxWeekOffset <= 0 {
		params.MaxWeekOffset = 12
	}
	return &RescheduleService{
		contracts:     params.Contracts,
		sessions:      params.Sessions,
		availability:  params.Availability,
		cache:         params.Cache,
		metrics:       params.Metrics,
		validator:     params.Validator,
		logger:        params.Logger,
		snapshotTTL:   params.SnapshotTTL,
		maxWeekOffset: params.MaxWeekOffset,
	}
}

// SelectSlotRequest is the guardian's committed slot choice.
type SelectSlotRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
}

// BuildWeek computes the annotated calendar for one week of the flow.
// A negative offset is clamped to the current week since past weeks can
// never hold offerable slots.
func (s *RescheduleService) BuildWeek(ctx context.Context, contractID, bookingID string, weekOffset int, now time.Time) (*schedule.WeekCalendar, error) {
	if weekOffset < 0 {
		weekOffset = 0
	}
	if weekOffset > s.maxWeekOffset {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("week offset must not exceed %d", s.maxWeekOffset))
	}

	snap, err := s.snapshot(ctx, contractID, bookingID)
	if err != nil {
		return nil, err
	}

	calendar := schedule.BuildWeek(weekOffset, now, snap.Availability(s.logger), snap.Conflicts(s.logger))
	s.metrics.RecordCalendarBuilt(weekOffset)
	return &calendar, nil
}

// ValidateSelection re-checks the chosen slot at submission time and
// returns it for hand-off to the booking service. Temporal validity is
// always judged against the clock passed in now, not the one the
// calendar was built with.
func (s *RescheduleService) ValidateSelection(ctx context.Context, contractID, bookingID string, req SelectSlotRequest, now time.Time) (*schedule.Slot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection payload")
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be formatted as YYYY-MM-DD")
	}
	startMin, err := schedule.ParseClock(req.StartTime)
	if err != nil || !schedule.IsCanonicalStart(startMin) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start_time is not a supported session start")
	}

	snap, err := s.snapshot(ctx, contractID, bookingID)
	if err != nil {
		return nil, err
	}

	slot, err := schedule.ValidateSelection(now, date, startMin, snap.Conflicts(s.logger))
	if err != nil {
		switch {
		case errors.Is(err, appErrors.ErrSlotInPast):
			s.metrics.RecordSelection("past")
		case errors.Is(err, appErrors.ErrSlotAlreadyBooked):
			s.metrics.RecordSelection("booked")
		}
		return nil, err
	}

	s.metrics.RecordSelection("accepted")
	// The snapshot is spent once a selection clears: the downstream
	// booking call will change the session list it was built from.
	s.cache.Delete(ctx, snapshotKey(contractID, bookingID))
	return &slot, nil
}

// ExportWeek renders one week's calendar as CSV or PDF for printing.
func (s *RescheduleService) ExportWeek(ctx context.Context, contractID, bookingID string, weekOffset int, now time.Time, format string) ([]byte, string, error) {
	calendar, err := s.BuildWeek(ctx, contractID, bookingID, weekOffset, now)
	if err != nil {
		return nil, "", err
	}

	dataset := weekDataset(calendar)
	switch format {
	case "csv":
		payload, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := export.NewPDFExporter().Render(dataset, fmt.Sprintf("Makeup slots, week of %s", calendar.WeekStart))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func weekDataset(calendar *schedule.WeekCalendar) export.Dataset {
	headers := []string{"Date", "Weekday"}
	for _, start := range schedule.CanonicalStartMinutes {
		headers = append(headers, schedule.FormatClock(start))
	}

	rows := make([][]string, 0, len(calendar.Days))
	for _, day := range calendar.Days {
		row := []string{day.Date, day.Weekday}
		for _, slot := range day.Slots {
			if slot.Legal {
				row = append(row, "available")
			} else {
				row = append(row, string(slot.Reason))
			}
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func snapshotKey(contractID, bookingID string) string {
	return fmt.Sprintf("reschedule:snapshot:%s:%s", contractID, bookingID)
}

// snapshot assembles (or re-reads from cache) the immutable context one
// scheduling interaction works from. Feeds are fetched once; weeks are
// paged against the same data.
func (s *RescheduleService) snapshot(ctx context.Context, contractID, bookingID string) (*schedule.RescheduleContext, error) {
	key := snapshotKey(contractID, bookingID)

	var cached schedule.RescheduleContext
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		s.metrics.RecordSnapshotCache(true)
		return &cached, nil
	}
	if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("snapshot cache read failed", zap.String("key", key), zap.Error(err))
	}
	s.metrics.RecordSnapshotCache(false)

	contract, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "contract not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load contract")
	}

	booking, err := s.sessions.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "booking not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load booking")
	}
	if booking.ContractID != contract.ID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "booking does not belong to this contract")
	}

	primary, err := s.availability.ListByTutor(ctx, contract.PrimaryTutorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load primary tutor availability")
	}
	backup, err := s.availability.ListByTutor(ctx, contract.BackupTutorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load backup tutor availability")
	}

	sessions, err := s.sessions.ListByChild(ctx, contract.ChildID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sessions")
	}

	snap := &schedule.RescheduleContext{
		Contract:       *contract,
		Booking:        *booking,
		PrimaryWindows: primary,
		BackupWindows:  backup,
		Sessions:       sessions,
	}

	if err := s.cache.Set(ctx, key, snap, s.snapshotTTL); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.String("key", key), zap.Error(err))
	}

	return snap, nil
}
