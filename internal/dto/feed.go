package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tutorlink/portal-api/internal/models"
)

// The upstream scheduling tools deliver records with inconsistent field
// casing (camelCase, snake_case, PascalCase, sometimes all three in one
// payload). Everything is normalised into the typed models here, before
// any engine code sees it; the engine only ever operates on the typed
// shapes.

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// NormalizeWindow maps one loosely-shaped availability record into an
// AvailabilityWindow. A record without a tutor id or clock range is
// rejected outright; range sanity is left to the engine, which skips
// malformed windows instead of failing the calendar.
func NormalizeWindow(record map[string]interface{}) (models.AvailabilityWindow, error) {
	w := models.AvailabilityWindow{
		ID:             stringField(record, "id", "windowId", "window_id"),
		TutorID:        stringField(record, "tutorId", "tutor_id", "TutorID", "teacherId", "teacher_id"),
		DaysOfWeek:     intField(record, "daysOfWeek", "days_of_week", "DaysOfWeek", "dayMask", "day_mask"),
		AvailableFrom:  stringField(record, "availableFrom", "available_from", "AvailableFrom", "startTime", "start_time"),
		AvailableUntil: stringField(record, "availableUntil", "available_until", "AvailableUntil", "endTime", "end_time"),
	}
	if w.TutorID == "" {
		return models.AvailabilityWindow{}, fmt.Errorf("availability record has no tutor id")
	}
	if w.AvailableFrom == "" || w.AvailableUntil == "" {
		return models.AvailabilityWindow{}, fmt.Errorf("availability record has no clock range")
	}

	if from, ok := timeField(record, "effectiveFrom", "effective_from", "EffectiveFrom", "validFrom", "valid_from"); ok {
		w.EffectiveFrom = from
	}
	if until, ok := timeField(record, "effectiveUntil", "effective_until", "EffectiveUntil", "validUntil", "valid_until"); ok {
		w.EffectiveUntil = &until
	}

	return w, nil
}

// NormalizeSession maps one loosely-shaped session record into a
// Session. Status values are folded to the canonical uppercase form.
func NormalizeSession(record map[string]interface{}) (models.Session, error) {
	s := models.Session{
		ID:         stringField(record, "id", "bookingId", "booking_id", "BookingID"),
		ContractID: stringField(record, "contractId", "contract_id", "ContractID"),
		ChildID:    stringField(record, "childId", "child_id", "ChildID", "studentId", "student_id"),
		StartTime:  stringField(record, "startTime", "start_time", "StartTime"),
		EndTime:    stringField(record, "endTime", "end_time", "EndTime"),
		Status:     models.SessionStatus(strings.ToUpper(stringField(record, "status", "Status", "state"))),
	}
	if s.ID == "" {
		return models.Session{}, fmt.Errorf("session record has no booking id")
	}
	date, ok := timeField(record, "sessionDate", "session_date", "SessionDate", "date", "Date")
	if !ok {
		return models.Session{}, fmt.Errorf("session record has no date")
	}
	s.SessionDate = date

	return s, nil
}

func lookup(record map[string]interface{}, names ...string) (interface{}, bool) {
	for _, name := range names {
		if v, ok := record[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(record map[string]interface{}, names ...string) string {
	v, ok := lookup(record, names...)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func intField(record map[string]interface{}, names ...string) int {
	v, ok := lookup(record, names...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64: // JSON numbers decode as float64
		return int(n)
	case int:
		return n
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return 0
}

func timeField(record map[string]interface{}, names ...string) (time.Time, bool) {
	raw := stringField(record, names...)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
