package repository

import (
	"database/sql"
	"time"
)

// nullableInt64 converts a *int64 to a value suitable for SQLite storage.
func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// int64Ptr converts a scanned NULL-able integer back to *int64.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// nullableString stores "" as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
