package schedule

import (
	"time"

	appErrors "github.com/tutorlink/portal-api/pkg/errors"
)

// ValidateSelection re-checks a chosen (date, start) pair at submission
// time. The rendered calendar may be minutes old by the time a guardian
// commits, so temporal validity is always evaluated against the current
// clock even though the conflict index is the snapshot one.
//
// Only the hard constraints block submission: a slot in the past and a
// direct overlap with a known session. Tutor availability and the
// spacing rule are discovery-time advisories and are not re-checked
// here; a genuinely concurrent double-booking is the booking service's
// uniqueness constraint to enforce, not ours.
func ValidateSelection(now, date time.Time, startMin int, conflicts *SessionConflicts) (Slot, error) {
	today := DateOf(now)
	slotDate := DateOf(date)

	if slotDate.Before(today) {
		return Slot{}, appErrors.ErrSlotInPast
	}
	if SameDate(slotDate, today) && startMin <= MinutesOfDay(now) {
		return Slot{}, appErrors.ErrSlotInPast
	}
	if conflicts.Overlaps(slotDate, startMin) {
		return Slot{}, appErrors.ErrSlotAlreadyBooked
	}

	return Slot{
		Date:      dateKey(slotDate),
		StartTime: FormatClock(startMin),
		EndTime:   FormatClock(startMin + SessionMinutes),
		Legal:     true,
	}, nil
}

// IsCanonicalStart reports whether startMin is one of the four
// supported daily start times.
func IsCanonicalStart(startMin int) bool {
	for _, s := range CanonicalStartMinutes {
		if s == startMin {
			return true
		}
	}
	return false
}
