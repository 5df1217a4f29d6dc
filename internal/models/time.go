package models

import "time"

// timestampLayout is fixed width so that timestamps sort lexicographically.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp formats t as a UTC ISO-8601 string.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
