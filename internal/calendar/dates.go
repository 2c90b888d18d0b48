// Package calendar provides local-calendar-day arithmetic on ISO dates.
//
// All functions operate on whole calendar days in the local timezone:
// DiffDays counts day boundaries crossed, never elapsed hours, so results
// are stable across DST transitions.
package calendar

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

// ParseISO parses an ISO YYYY-MM-DD date into a local-midnight time.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISO renders t's local calendar day as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

// AddDays returns the local-midnight time n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DiffDays returns the number of calendar-day boundaries between from and to.
// Positive when to is after from.
func DiffDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 12, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 12, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// WeekdayIndex maps t's weekday to Monday-based indexing: 0=Mon .. 6=Sun.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SundayWeekday returns t's weekday with Sunday-based indexing: 0=Sun .. 6=Sat.
func SundayWeekday(t time.Time) int {
	return int(t.Weekday())
}

// MondayOf returns the Monday of t's ISO week at local midnight.
func MondayOf(t time.Time) time.Time {
	return AddDays(t, -WeekdayIndex(t))
}
