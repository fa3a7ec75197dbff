package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_AlwaysFortyTwoSlots(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2024, time.January},
		{2024, time.February}, // leap year
		{2023, time.February}, // non-leap year
		{2024, time.June},
		{2024, time.September}, // starts on Sunday
		{2024, time.December},
		{2025, time.March},
	}

	for _, m := range months {
		grid := BuildMonthGrid(m.year, m.month)
		assert.Len(t, grid, GridSize, "%v %d", m.month, m.year)
	}
}

func TestBuildMonthGrid_June2024(t *testing.T) {
	// June 1, 2024 is a Saturday, so the grid opens with six May days.
	grid := BuildMonthGrid(2024, time.June)
	require.Len(t, grid, GridSize)

	assert.Equal(t, time.Date(2024, time.May, 26, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.False(t, grid[0].InTargetMonth)

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), grid[6].Date)
	assert.True(t, grid[6].InTargetMonth)

	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), grid[35].Date)
	assert.True(t, grid[35].InTargetMonth)

	// Remaining slots pad into July.
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), grid[36].Date)
	assert.False(t, grid[36].InTargetMonth)
	assert.Equal(t, time.Date(2024, time.July, 6, 0, 0, 0, 0, time.UTC), grid[41].Date)
}

func TestBuildMonthGrid_MonthStartingOnSunday(t *testing.T) {
	// September 1, 2024 is a Sunday: no leading days at all.
	grid := BuildMonthGrid(2024, time.September)
	require.Len(t, grid, GridSize)

	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.True(t, grid[0].InTargetMonth)
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	grid := BuildMonthGrid(2024, time.February)
	require.Len(t, grid, GridSize)

	inMonth := 0
	for _, slot := range grid {
		if slot.InTargetMonth {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth)
}

func TestBuildMonthGrid_ContiguousDates(t *testing.T) {
	grid := BuildMonthGrid(2024, time.December)
	require.Len(t, grid, GridSize)

	for i := 1; i < len(grid); i++ {
		assert.Equal(t, grid[i-1].Date.AddDate(0, 0, 1), grid[i].Date, "slot %d", i)
	}
}
