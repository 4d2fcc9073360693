// File: timex.go
// Title: Date and Time Helpers
// Description: Calendar boundaries, relative times, range checks and
//              multi-layout parsing on top of the time package. Functions
//              keep the location of their input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-07
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-07 v0.1.0: Initial implementation with boundaries and parsing
// - 2026-10-14 v0.2.0: Ago/FromNow, IsBetween, leap year and month length

package timex

import (
	"strings"
	"time"

	"github.com/msto63/extkit/core/errors"
)

// now is replaced in tests
var now = time.Now

// Layouts tried by Parse, in order
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.Kitchen,
}

// Parse parses value with the first matching entry of Layouts. Values
// without zone information are read in time.Local.
func Parse(value string) (time.Time, error) {
	return ParseInLocation(value, time.Local)
}

// ParseInLocation is Parse with an explicit default location
func ParseInLocation(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, errors.InvalidArgument(errors.ModuleTimex, "Parse", "value", value, "must not be empty")
	}
	if loc == nil {
		return time.Time{}, errors.NilArgument(errors.ModuleTimex, "Parse", "loc")
	}
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.InvalidFormat(errors.ModuleTimex, "Parse", value, "date/time in a supported layout", nil)
}

// Ago returns the time d before now
func Ago(d time.Duration) time.Time { return now().Add(-d) }

// FromNow returns the time d after now
func FromNow(d time.Duration) time.Time { return now().Add(d) }

// ===============================
// Boundaries
// ===============================

// StartOfDay returns midnight at the start of t's day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns the start of the Monday of t's week
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// EndOfWeek returns the last nanosecond of the Sunday of t's week
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns midnight on the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight on January 1st of t's year
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of t's year
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// ===============================
// Calendar arithmetic
// ===============================

// Age returns the number of full years between birth and at
func Age(birth, at time.Time) int {
	if at.Before(birth) {
		return 0
	}
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// DaysBetween returns the number of calendar days from a to b, negative when
// b is earlier. Times are compared by their date in their own location.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / Day)
}

// IsLeapYear reports whether year has 366 days
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Predicates
// ===============================

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports whether t falls on Monday to Friday
func IsWeekday(t time.Time) bool { return !IsWeekend(t) }

// IsToday reports whether t is on the current date in t's location
func IsToday(t time.Time) bool {
	return DaysBetween(t, now().In(t.Location())) == 0
}

// IsBetween reports whether t lies within [start, end]
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Clamp limits t to [lo, hi]
func Clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}

// ToUnix returns t as Unix seconds
func ToUnix(t time.Time) int64 { return t.Unix() }

// FromUnix returns the UTC time for Unix seconds
func FromUnix(sec int64) time.Time { return time.Unix(sec, 0).UTC() }
