package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

const DateFormat = "2006-01-02"

var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateFormat,
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// StartOfDay returns midnight UTC of the day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOfWeek returns midnight UTC of the Monday of the week containing t.
// Weeks run Monday through Sunday (Monday offset 0).
func MondayOfWeek(t time.Time) time.Time {
	offset := (int(t.UTC().Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func LastWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

func LastMonth(t time.Time) time.Time {
	return t.AddDate(0, -1, 0)
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return t.UTC(), nil
}

// ParseTimestamp parses an RFC3339 timestamp, an offset-less timestamp, or a
// bare date. Inputs without a timezone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseMonth accepts a month number (1-12) or an English month name.
func ParseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month number %d out of range", n)
		}
		return time.Month(n), nil
	}

	idx := slices.IndexFunc(monthNames, func(name string) bool {
		return strings.EqualFold(name, s)
	})
	if idx < 0 {
		return 0, fmt.Errorf("unknown month %q", s)
	}

	return time.Month(idx + 1), nil
}
