package schedule

import (
	"strings"
	"time"
)

// DayMask encodes the weekdays a recurring rule applies to as a 7-bit
// integer: Sunday=1, Monday=2, Tuesday=4, Wednesday=8, Thursday=16,
// Friday=32, Saturday=64. Zero means the rule never applies.
type DayMask int

var dayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BitFor returns the mask bit for a weekday.
func BitFor(w time.Weekday) DayMask {
	return DayMask(1 << uint(w))
}

// Matches reports whether the mask includes the weekday of date.
func (m DayMask) Matches(date time.Time) bool {
	return m&BitFor(date.Weekday()) != 0
}

// Format renders the mask as comma-separated weekday abbreviations in
// weekday order, e.g. "Mon, Wed, Fri".
func (m DayMask) Format() string {
	var names []string
	for w := time.Sunday; w <= time.Saturday; w++ {
		if m&BitFor(w) != 0 {
			names = append(names, dayAbbrevs[w])
		}
	}
	return strings.Join(names, ", ")
}
