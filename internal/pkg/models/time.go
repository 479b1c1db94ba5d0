package models

import (
	"time"
)

// DateLayout is the wire format for trip dates
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseDate parses a calendar date in YYYY-MM-DD form
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
