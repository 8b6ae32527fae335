package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the wire layout of plain calendar dates
const ISODateLayout = "2006-01-02"

// naive datetimes (no offset) are read as UTC
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseUTCDate parses a "YYYY-MM-DD" string into midnight UTC of that calendar day.
// The string is split on "-" and never interpreted in a local timezone.
func ParseUTCDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("invalid date string: %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string: %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid date string: %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("invalid date string: %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// FormatISODate renders the UTC calendar day of t as "YYYY-MM-DD"
func FormatISODate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// ParseDateTime parses an ISO-8601 datetime
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime string: %q", s)
}

// FormatDateTime renders t as RFC3339 in UTC
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// AddDays shifts a calendar date by whole days using date-component arithmetic
func AddDays(d time.Time, days int) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day()+days, 0, 0, 0, 0, time.UTC)
}

// TruncateToDate returns midnight UTC of the calendar day t falls on in its own location
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsNextDay reports whether b is exactly one calendar day after a
func IsNextDay(a, b time.Time) bool {
	return AddDays(a, 1).Equal(TruncateToDate(b.UTC()))
}

// InLocation places the calendar day d at midnight in loc
func InLocation(d time.Time, loc *time.Location) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func IsLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func DaysInMonth(y int, m time.Month) int {
	switch m {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeap(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
