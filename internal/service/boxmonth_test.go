package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBoxMonth(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantKey     string
		wantDisplay string
	}{
		{
			name:        "before_cutoff",
			now:         time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC),
			wantKey:     "2026-02",
			wantDisplay: "февраля",
		},
		{
			name:        "on_cutoff_day",
			now:         time.Date(2026, time.January, 20, 23, 59, 0, 0, time.UTC),
			wantKey:     "2026-02",
			wantDisplay: "февраля",
		},
		{
			name:        "after_cutoff",
			now:         time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC),
			wantKey:     "2026-03",
			wantDisplay: "марта",
		},
		{
			name:        "december_rolls_to_next_year",
			now:         time.Date(2026, time.December, 5, 10, 0, 0, 0, time.UTC),
			wantKey:     "2027-01",
			wantDisplay: "января",
		},
		{
			name:        "late_december_skips_january",
			now:         time.Date(2026, time.December, 25, 10, 0, 0, 0, time.UTC),
			wantKey:     "2027-02",
			wantDisplay: "февраля",
		},
		{
			name:        "late_november_rolls_to_january",
			now:         time.Date(2026, time.November, 30, 10, 0, 0, 0, time.UTC),
			wantKey:     "2027-01",
			wantDisplay: "января",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, display := NextBoxMonth(tt.now)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantDisplay, display)
		})
	}
}

func TestMonthDisplayForKey(t *testing.T) {
	assert.Equal(t, "февраля", monthDisplayForKey("2026-02"))
	assert.Equal(t, "декабря", monthDisplayForKey("2025-12"))
	// malformed keys are shown as-is
	assert.Equal(t, "not-a-month", monthDisplayForKey("not-a-month"))
}
