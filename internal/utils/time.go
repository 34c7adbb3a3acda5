package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/diario/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DateKey returns the YYYY-MM-DD calendar day of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.DateFormat)
}

// DaysBetween returns the number of calendar days from earlier to later, using
// only their year/month/day fields. A DST transition between the two does not
// change the result.
func DaysBetween(later, earlier time.Time) int {
	a := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDateTimeInLocation parses a "YYYY-MM-DD HH:MM" string in loc. A "T"
// separator and RFC3339 timestamps are accepted as well.
func ParseDateTimeInLocation(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	s = strings.Replace(s, "T", " ", 1)
	t, err := time.ParseInLocation(constants.DateTimeFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q (expected YYYY-MM-DD HH:MM): %w", s, err)
	}
	return t, nil
}

// FormatDateTime formats t in loc for display.
func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 02 Jan 2006 15:04")
}
