package models

import "time"

// AvailabilityWindow is one recurring weekly availability rule for a
// tutor: the weekdays it applies to (7-bit mask, Sunday=1 through
// Saturday=64), a daily clock range, and an optional effective date
// range. A nil EffectiveUntil means the rule is open-ended.
type AvailabilityWindow struct {
	ID             string     `db:"id" json:"id"`
	TutorID        string     `db:"tutor_id" json:"tutor_id"`
	DaysOfWeek     int        `db:"days_of_week" json:"days_of_week"`
	AvailableFrom  string     `db:"available_from" json:"available_from"`
	AvailableUntil string     `db:"available_until" json:"available_until"`
	EffectiveFrom  time.Time  `db:"effective_from" json:"effective_from"`
	EffectiveUntil *time.Time `db:"effective_until" json:"effective_until,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`

	// DaysLabel is a display rendering of DaysOfWeek ("Mon, Wed, Fri"),
	// filled in by the service layer and never stored.
	DaysLabel string `db:"-" json:"days_label,omitempty"`
}
