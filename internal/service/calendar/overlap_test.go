package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	start := day(2024, time.June, 1)
	end := day(2024, time.June, 5)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"on start boundary", day(2024, time.June, 1), true},
		{"on end boundary", day(2024, time.June, 5), true},
		{"strictly inside", day(2024, time.June, 3), true},
		{"day before start", day(2024, time.May, 31), false},
		{"day after end", day(2024, time.June, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.d, start, end))
		})
	}
}

func TestOverlaps_SingleDayRange(t *testing.T) {
	d := day(2024, time.June, 10)

	assert.True(t, Overlaps(d, d, d))
	assert.False(t, Overlaps(day(2024, time.June, 9), d, d))
	assert.False(t, Overlaps(day(2024, time.June, 11), d, d))
}

func TestOverlaps_IgnoresTimeOfDay(t *testing.T) {
	start := day(2024, time.June, 1)
	end := day(2024, time.June, 5)

	noon := time.Date(2024, time.June, 5, 12, 30, 0, 0, time.UTC)
	assert.True(t, Overlaps(noon, start, end))
}
