package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorlink/portal-api/internal/models"
)

func TestTutorAvailabilityEmptySetsUnconstrained(t *testing.T) {
	avail := NewTutorAvailability(nil, nil, nil)

	dates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		for _, start := range CanonicalStartMinutes {
			assert.True(t, avail.IsAvailable(date, start))
		}
	}
}

func TestTutorAvailabilityRequiresBothTutors(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	primary := []models.AvailabilityWindow{window(2, "16:00", "18:00", jan1, nil)}  // Mon only
	backup := []models.AvailabilityWindow{window(4, "16:00", "18:00", jan1, nil)}   // Tue only

	avail := NewTutorAvailability(primary, backup, nil)

	// Primary alone would allow Monday 16:00, but the backup tutor is
	// only free on Tuesdays: conjunction, not disjunction.
	assert.False(t, avail.IsAvailable(monday, 960))
	assert.False(t, avail.IsAvailable(tuesday, 960))
}

func TestTutorAvailabilityOneTutorUnconstrained(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	primary := []models.AvailabilityWindow{window(2, "16:00", "21:00", jan1, nil)}
	avail := NewTutorAvailability(primary, nil, nil)

	assert.True(t, avail.IsAvailable(monday, 960))
	assert.False(t, avail.IsAvailable(tuesday, 960))
}

func TestTutorAvailabilityMalformedWindowStillConstrains(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	// A tutor whose only window is malformed did provide data; the
	// malformed record covers nothing, so no slot passes for them.
	// Skipping the record must not flip the tutor to unconstrained.
	primary := []models.AvailabilityWindow{window(2, "21:00", "16:00", jan1, nil)}
	avail := NewTutorAvailability(primary, nil, nil)

	assert.False(t, avail.IsAvailable(monday, 960))
}

func TestTutorAvailabilityAnyWindowOfATutorSuffices(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	primary := []models.AvailabilityWindow{
		window(2, "09:00", "11:00", jan1, nil),
		window(2, "16:00", "21:00", jan1, nil),
	}
	avail := NewTutorAvailability(primary, nil, nil)

	assert.True(t, avail.IsAvailable(monday, 1140))
	assert.False(t, avail.IsAvailable(monday, 720))
}
