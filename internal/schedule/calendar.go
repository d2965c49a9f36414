package schedule

import "time"

// CanonicalStartMinutes lists the four fixed daily session start times
// (16:00, 17:30, 19:00, 20:30) as minutes since midnight.
var CanonicalStartMinutes = [4]int{960, 1050, 1140, 1230}

// SlotReason explains why a slot is not offerable. Only the first
// matching reason is surfaced; legality itself is the conjunction of
// all four checks.
type SlotReason string

const (
	ReasonNone             SlotReason = ""
	ReasonPast             SlotReason = "past"
	ReasonBooked           SlotReason = "booked"
	ReasonTutorUnavailable SlotReason = "tutor_unavailable"
	ReasonTooClose         SlotReason = "too_close"
)

// Slot is one annotated makeup-session candidate.
type Slot struct {
	Date      string     `json:"date"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Legal     bool       `json:"legal"`
	Reason    SlotReason `json:"reason,omitempty"`
}

// DaySlots carries one date's slots in chronological order.
type DaySlots struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Slots   []Slot `json:"slots"`
}

// WeekCalendar is the full annotated week returned to the guardian.
type WeekCalendar struct {
	WeekOffset int        `json:"week_offset"`
	WeekStart  string     `json:"week_start"`
	Days       []DaySlots `json:"days"`
}

// BuildWeek computes the annotated slot calendar for the week that
// starts weekOffset*7 days after now's date. It is a pure function of
// its inputs and never fails: illegal slots are annotated, not errors.
//
// Dates before now's date are dropped entirely (for offset 0 the week
// starts mid-stride), and slots earlier today that have already started
// are marked past. Reason precedence is past, booked, tutor
// unavailability, then spacing; the first match wins.
func BuildWeek(weekOffset int, now time.Time, availability *TutorAvailability, conflicts *SessionConflicts) WeekCalendar {
	today := DateOf(now)
	weekStart := today.AddDate(0, 0, weekOffset*7)
	nowMin := MinutesOfDay(now)

	calendar := WeekCalendar{
		WeekOffset: weekOffset,
		WeekStart:  dateKey(weekStart),
	}

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		if date.Before(today) {
			continue
		}

		day := DaySlots{
			Date:    dateKey(date),
			Weekday: dayAbbrevs[date.Weekday()],
			Slots:   make([]Slot, 0, len(CanonicalStartMinutes)),
		}
		for _, start := range CanonicalStartMinutes {
			day.Slots = append(day.Slots, classify(date, start, today, nowMin, availability, conflicts))
		}
		calendar.Days = append(calendar.Days, day)
	}

	return calendar
}

func classify(date time.Time, startMin int, today time.Time, nowMin int, availability *TutorAvailability, conflicts *SessionConflicts) Slot {
	slot := Slot{
		Date:      dateKey(date),
		StartTime: FormatClock(startMin),
		EndTime:   FormatClock(startMin + SessionMinutes),
	}

	switch {
	case SameDate(date, today) && startMin <= nowMin:
		slot.Reason = ReasonPast
	case conflicts.Overlaps(date, startMin):
		slot.Reason = ReasonBooked
	case !availability.IsAvailable(date, startMin):
		slot.Reason = ReasonTutorUnavailable
	case conflicts.TooClose(date, startMin):
		slot.Reason = ReasonTooClose
	default:
		slot.Legal = true
	}

	return slot
}
