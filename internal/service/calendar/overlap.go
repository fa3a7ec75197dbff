package calendar

import "time"

// normalizeDay truncates t to its calendar day in UTC so range checks
// compare dates, never wall-clock times.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether day d falls within the inclusive range
// [start, end]. The three-way check (boundary equality on either end, or
// strictly inside) is deliberate: collapsing it into a single comparison
// pair is where off-by-one boundary bugs creep in.
func Overlaps(d, start, end time.Time) bool {
	d = normalizeDay(d)
	start = normalizeDay(start)
	end = normalizeDay(end)

	return d.Equal(start) || d.Equal(end) || (d.After(start) && d.Before(end))
}
