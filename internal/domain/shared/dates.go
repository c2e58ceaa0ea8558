package shared

import "time"

// DateLayout is the calendar-date format used throughout the sample data.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date string. The zero time is returned for
// empty or malformed input so that records with blank dates stay renderable.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
