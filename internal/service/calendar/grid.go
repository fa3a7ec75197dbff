package calendar

import "time"

// GridSize is the fixed number of day slots in a month view: 6 full weeks.
// Padding every month to the same size keeps the rendered grid stable
// regardless of month length or starting weekday.
const GridSize = 42

// DaySlot is one addressable cell of the month grid.
type DaySlot struct {
	Date          time.Time
	InTargetMonth bool
}

// BuildMonthGrid expands (year, month) into an ordered sequence of exactly
// 42 day slots: the trailing days of the previous month up to the weekday of
// the 1st (Sunday = 0), the target month itself, then leading days of the
// next month until the grid is full. Pure function; every valid month/year
// produces a result.
func BuildMonthGrid(year int, month time.Month) []DaySlot {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leadingDays := int(firstOfMonth.Weekday())

	slots := make([]DaySlot, 0, GridSize)

	for i := leadingDays; i > 0; i-- {
		slots = append(slots, DaySlot{
			Date:          firstOfMonth.AddDate(0, 0, -i),
			InTargetMonth: false,
		})
	}

	day := firstOfMonth
	for day.Month() == month {
		slots = append(slots, DaySlot{Date: day, InTargetMonth: true})
		day = day.AddDate(0, 0, 1)
	}

	for len(slots) < GridSize {
		slots = append(slots, DaySlot{Date: day, InTargetMonth: false})
		day = day.AddDate(0, 0, 1)
	}

	return slots
}
