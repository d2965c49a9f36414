package models

import "time"

// SessionStatus enumerates tutoring session states.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
	SessionStatusMissed    SessionStatus = "MISSED"
)

// CountsForConflicts reports whether a session in this status occupies
// its slot for conflict purposes. Cancelled and missed sessions free
// the slot.
func (s SessionStatus) CountsForConflicts() bool {
	return s == SessionStatusScheduled || s == SessionStatusCompleted
}

// Session represents one booked tutoring session. StartTime and
// EndTime are clock values in "HH:MM" form; SessionDate carries the
// calendar date only.
type Session struct {
	ID          string        `db:"id" json:"id"`
	ContractID  string        `db:"contract_id" json:"contract_id"`
	ChildID     string        `db:"child_id" json:"child_id"`
	SessionDate time.Time     `db:"session_date" json:"session_date"`
	StartTime   string        `db:"start_time" json:"start_time"`
	EndTime     string        `db:"end_time" json:"end_time"`
	Status      SessionStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}
