package utils

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date form accepted next to RFC 3339.
const DateLayout = time.DateOnly

// ErrInvalidDate is returned for values that are neither RFC 3339 nor
// YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses s as an RFC 3339 timestamp or a calendar date. dateOnly
// reports which form matched. Results are always in UTC.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), false, nil
	}

	if t, err = time.Parse(DateLayout, s); err == nil {
		return t.UTC(), true, nil
	}

	return time.Time{}, false, ErrInvalidDate
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last microsecond of t's UTC day. Microseconds match
// the resolution of PostgreSQL timestamps, so the bound is never rounded up
// into the next day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Microsecond)
}
