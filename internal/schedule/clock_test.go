package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"16:00", 960, false},
		{"17:30", 1050, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"19:00:00", 1140, false},
		{"24:00", 0, true},
		{"16:60", 0, true},
		{"half past four", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "16:00", FormatClock(960))
	assert.Equal(t, "20:30", FormatClock(1230))
	assert.Equal(t, "00:05", FormatClock(5))
}

func TestDateHelpers(t *testing.T) {
	now := time.Date(2024, 1, 16, 17, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), DateOf(now))
	assert.Equal(t, 17*60+45, MinutesOfDay(now))
	assert.True(t, SameDate(now, DateOf(now)))
	assert.False(t, SameDate(now, now.AddDate(0, 0, 1)))
}
