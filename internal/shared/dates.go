package shared

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for date-only values (due dates,
	// payment dates). These stay strings end to end and are never
	// revived into timestamps.
	DateLayout = "2006-01-02"
	// MonthLayout is the YYYY-MM bucket key used by the cash book,
	// salary months and report grouping.
	MonthLayout = "2006-01"
)

// ParseLocalDate interprets a YYYY-MM-DD string as midnight in the local
// zone. Parsing date-only strings as UTC and comparing against a local
// "today" shifts the calendar day in negative-offset zones.
func ParseLocalDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("shared: invalid date %q: %w", value, err)
	}
	return t, nil
}

// LocalDateString formats t as YYYY-MM-DD from its calendar components,
// not from a UTC conversion.
func LocalDateString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// MonthKey returns the YYYY-MM bucket for t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthOfDate extracts the YYYY-MM prefix of a YYYY-MM-DD string.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// AddMonths shifts a YYYY-MM key by delta calendar months, rolling over
// year boundaries.
func AddMonths(month string, delta int) (string, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", fmt.Errorf("shared: invalid month %q: %w", month, err)
	}
	return t.AddDate(0, delta, 0).Format(MonthLayout), nil
}

// NextMonth returns month + 1.
func NextMonth(month string) (string, error) {
	return AddMonths(month, 1)
}

// DaysBetween returns whole calendar days from one date to another.
// Both ends are normalised to UTC midnight so DST transitions cannot
// produce 23- or 25-hour days.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
