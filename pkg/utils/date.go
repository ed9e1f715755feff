package utils

import "time"

// DateKey returns the canonical year-month-day key for a point in time,
// rendered in the time's own location. Two sale records belong to the same
// day if and only if their keys are equal; timestamps are never compared
// directly because time-of-day and zone drift must not move a sale between
// days.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDateKey parses a canonical key back into a local-zone time at
// midnight.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, key, time.Local)
}

// MonthKey returns the year-month prefix shared by every date key inside the
// given calendar month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
