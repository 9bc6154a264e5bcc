package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay drops the time-of-day component of t in the given zone.
// The result is midnight in loc, which is what the sentiment join keys on.
func TruncateToDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether two instants fall on the same calendar day in loc.
func SameDay(t1, t2 time.Time, loc *time.Location) bool {
	return t1.In(loc).Format(layout) == t2.In(loc).Format(layout)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}
