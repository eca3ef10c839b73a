package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a calendar date in YYYY-MM-DD form and pins it to
// midnight UTC. All booking range math assumes dates normalized this way.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format %s", dateStr, DateLayout)
	}
	return t, nil
}

// NormalizeDate truncates a timestamp to its midnight-UTC calendar day.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
