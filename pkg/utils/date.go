package utils

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a timestamp in the formats the query API accepts.
// Timestamps without an explicit zone are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

// FormatISO renders t as an ISO 8601 string in UTC. This exact format is
// used as the seed key for time-derived generation, so it must never change.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// TruncateToMinute drops seconds and smaller units, in UTC.
func TruncateToMinute(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}
