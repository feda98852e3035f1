package site

import (
	"fmt"
	"time"
)

// UnknownSize is reported when a size cannot be determined.
const UnknownSize = "Unknown"

// FormatKB renders a byte count as kilobytes with two decimals, e.g. "12.34 KB".
func FormatKB(n int64) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

// FormatTimestamp renders t as UTC ISO-8601 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
