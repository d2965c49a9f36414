package schedule

import (
	"go.uber.org/zap"

	"github.com/tutorlink/portal-api/internal/models"
)

// RescheduleContext is the immutable snapshot one scheduling
// interaction works from: the contract, the booking being replaced,
// both tutors' availability windows, and the child's session list. It
// is assembled once from the external feeds and reused for every week
// the guardian pages through.
type RescheduleContext struct {
	Contract       models.Contract              `json:"contract"`
	Booking        models.Session               `json:"booking"`
	PrimaryWindows []models.AvailabilityWindow  `json:"primary_windows"`
	BackupWindows  []models.AvailabilityWindow  `json:"backup_windows"`
	Sessions       []models.Session             `json:"sessions"`
}

// Availability builds the combined tutor availability index from the
// snapshot.
func (rc *RescheduleContext) Availability(logger *zap.Logger) *TutorAvailability {
	return NewTutorAvailability(rc.PrimaryWindows, rc.BackupWindows, logger)
}

// Conflicts builds the session conflict index from the snapshot,
// excluding the booking being rescheduled.
func (rc *RescheduleContext) Conflicts(logger *zap.Logger) *SessionConflicts {
	return NewSessionConflicts(rc.Sessions, rc.Contract.ChildID, rc.Booking.ID, logger)
}
