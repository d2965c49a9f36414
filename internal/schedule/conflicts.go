package schedule

import (
	"time"

	"go.uber.org/zap"

	"github.com/tutorlink/portal-api/internal/models"
)

// MinSpacingMinutes is the minimum separation required between the
// start times of two sessions for the same child on one date. With
// 90-minute sessions this leaves at least one full slot of idle time
// between consecutive sessions.
const MinSpacingMinutes = 180

type sessionSpan struct {
	startMin int
	endMin   int
}

// SessionConflicts indexes a child's existing sessions by date so slot
// candidates can be checked for direct overlap and for the spacing
// rule. The booking under rescheduling is excluded up front, so a slot
// is never rejected for colliding with the session it replaces.
type SessionConflicts struct {
	byDate map[string][]sessionSpan
}

// NewSessionConflicts builds the index from an unfiltered session feed.
// Only sessions for childID with a status that still occupies the slot
// participate; the excluded booking and records with unparseable times
// are skipped (the latter logged).
func NewSessionConflicts(sessions []models.Session, childID, excludeBookingID string, logger *zap.Logger) *SessionConflicts {
	if logger == nil {
		logger = zap.NewNop()
	}
	index := &SessionConflicts{byDate: make(map[string][]sessionSpan)}
	for _, s := range sessions {
		if s.ChildID != childID || s.ID == excludeBookingID || !s.Status.CountsForConflicts() {
			continue
		}
		start, err := ParseClock(s.StartTime)
		if err != nil {
			logger.Warn("skipping session with malformed start time", zap.String("session_id", s.ID), zap.Error(err))
			continue
		}
		end, err := ParseClock(s.EndTime)
		if err != nil {
			logger.Warn("skipping session with malformed end time", zap.String("session_id", s.ID), zap.Error(err))
			continue
		}
		key := dateKey(s.SessionDate)
		index.byDate[key] = append(index.byDate[key], sessionSpan{startMin: start, endMin: end})
	}
	return index
}

// Overlaps reports whether a 90-minute slot at startMin on date
// intersects an indexed session. Intervals are half-open, so
// back-to-back sessions do not overlap.
func (c *SessionConflicts) Overlaps(date time.Time, startMin int) bool {
	end := startMin + SessionMinutes
	for _, s := range c.byDate[dateKey(date)] {
		if startMin < s.endMin && s.startMin < end {
			return true
		}
	}
	return false
}

// TooClose reports whether an indexed session on the same date starts
// within MinSpacingMinutes of the candidate. The bound is strict: a
// gap of exactly 180 minutes is allowed. This is independent of
// Overlaps; a slot can be too close without literally overlapping.
func (c *SessionConflicts) TooClose(date time.Time, startMin int) bool {
	for _, s := range c.byDate[dateKey(date)] {
		diff := startMin - s.startMin
		if diff < 0 {
			diff = -diff
		}
		if diff < MinSpacingMinutes {
			return true
		}
	}
	return false
}
