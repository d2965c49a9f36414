package schedule

import (
	"time"

	"go.uber.org/zap"

	"github.com/tutorlink/portal-api/internal/models"
)

// TutorAvailability combines the availability windows of a contract's
// primary and backup tutor into one slot predicate.
//
// A tutor with no windows at all is treated as unconstrained: absence
// of availability data is not "never available", it means the feed has
// no recurring schedule for that tutor and the slot stands on its own
// merits. Callers wanting the opposite must supply a synthetic
// always-closed window instead of an empty set.
type TutorAvailability struct {
	primary         []windowSpan
	backup          []windowSpan
	primaryProvided bool
	backupProvided  bool
}

// NewTutorAvailability parses both tutors' windows. Malformed windows
// are logged and skipped so one bad record never blocks the calendar;
// the unconstrained rule keys off the windows provided, not the ones
// that survived parsing.
func NewTutorAvailability(primary, backup []models.AvailabilityWindow, logger *zap.Logger) *TutorAvailability {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TutorAvailability{
		primary:         parseWindows(primary, logger),
		backup:          parseWindows(backup, logger),
		primaryProvided: len(primary) > 0,
		backupProvided:  len(backup) > 0,
	}
}

func parseWindows(windows []models.AvailabilityWindow, logger *zap.Logger) []windowSpan {
	spans := make([]windowSpan, 0, len(windows))
	for _, w := range windows {
		span, err := parseWindow(w)
		if err != nil {
			logger.Warn("skipping malformed availability window",
				zap.String("window_id", w.ID),
				zap.String("tutor_id", w.TutorID),
				zap.Error(err))
			continue
		}
		spans = append(spans, span)
	}
	return spans
}

// IsAvailable reports whether a slot at startMin on date is covered by
// at least one window of each tutor that has windows.
func (a *TutorAvailability) IsAvailable(date time.Time, startMin int) bool {
	return covered(a.primary, a.primaryProvided, date, startMin) &&
		covered(a.backup, a.backupProvided, date, startMin)
}

func covered(spans []windowSpan, provided bool, date time.Time, startMin int) bool {
	if !provided {
		return true
	}
	for _, s := range spans {
		if s.covers(date, startMin) {
			return true
		}
	}
	return false
}
