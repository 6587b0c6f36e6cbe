package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout the database and UI.
const DateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD string into a time.Time at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysLate returns the whole days by which returnedAt exceeds the due date,
// clamped at zero. Both instants are compared at day granularity.
func DaysLate(dueDate string, returnedAt time.Time) (int64, error) {
	due, err := ParseDate(dueDate)
	if err != nil {
		return 0, err
	}
	late := int64(Truncate(returnedAt.UTC()).Sub(due).Hours() / 24)
	if late < 0 {
		return 0, nil
	}
	return late, nil
}
