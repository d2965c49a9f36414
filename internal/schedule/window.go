package schedule

import (
	"fmt"
	"time"

	"github.com/tutorlink/portal-api/internal/models"
)

// SessionMinutes is the fixed length of every tutoring session.
const SessionMinutes = 90

// windowSpan is a parsed, validated availability window.
type windowSpan struct {
	days           DayMask
	fromMin        int
	untilMin       int
	effectiveFrom  time.Time
	effectiveUntil *time.Time
}

func parseWindow(w models.AvailabilityWindow) (windowSpan, error) {
	from, err := ParseClock(w.AvailableFrom)
	if err != nil {
		return windowSpan{}, err
	}
	until, err := ParseClock(w.AvailableUntil)
	if err != nil {
		return windowSpan{}, err
	}
	if from >= until {
		return windowSpan{}, fmt.Errorf("available_from %s is not before available_until %s", w.AvailableFrom, w.AvailableUntil)
	}
	if w.EffectiveUntil != nil && w.EffectiveUntil.Before(w.EffectiveFrom) {
		return windowSpan{}, fmt.Errorf("effective range ends before it starts")
	}
	return windowSpan{
		days:           DayMask(w.DaysOfWeek),
		fromMin:        from,
		untilMin:       until,
		effectiveFrom:  w.EffectiveFrom,
		effectiveUntil: w.EffectiveUntil,
	}, nil
}

// covers reports whether a 90-minute block starting at startMin on date
// lies entirely inside this window: the date must fall in the effective
// range, the weekday bit must be set, and [start, start+90) must sit
// inside [from, until).
func (s windowSpan) covers(date time.Time, startMin int) bool {
	if DateOf(date).Before(DateOf(s.effectiveFrom)) {
		return false
	}
	if s.effectiveUntil != nil && DateOf(date).After(DateOf(*s.effectiveUntil)) {
		return false
	}
	if !s.days.Matches(date) {
		return false
	}
	return startMin >= s.fromMin && startMin+SessionMinutes <= s.untilMin
}

// WindowCovers evaluates one raw availability window against a candidate
// slot. A malformed window never covers anything and never panics.
func WindowCovers(w models.AvailabilityWindow, date time.Time, startMin int) bool {
	span, err := parseWindow(w)
	if err != nil {
		return false
	}
	return span.covers(date, startMin)
}
