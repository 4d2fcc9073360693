// File: timex_test.go
// Title: Time Helper Tests
// Description: Tests for duration parsing and formatting, calendar
//              boundaries and date predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-07
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-07 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Compound units, constructors, leap years

package timex

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterr "github.com/msto63/extkit/core/error"
)

func withNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, Milliseconds(1500))
	assert.Equal(t, 90*time.Second, Seconds(int32(90)))
	assert.Equal(t, 2*time.Hour, Minutes(uint8(120)))
	assert.Equal(t, 48*time.Hour, Hours(int64(48)))
	assert.Equal(t, 72*time.Hour, Days(3))
	assert.Equal(t, 14*24*time.Hour, Weeks(uint(2)))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"2d", 48 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"1w2d", 9 * 24 * time.Hour},
		{"1d12h30m", 36*time.Hour + 30*time.Minute},
		{"1.5d", 36 * time.Hour},
		{"-2d", -48 * time.Hour},
		{" 3d ", 72 * time.Hour},
		{"3 days", 72 * time.Hour},
		{"1 week", 7 * 24 * time.Hour},
		{"1.5 hours", 90 * time.Minute},
		{"10 min", 10 * time.Minute},
		{"250 milliseconds", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	_, err := ParseDuration("   ")
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))

	inputs := []string{
		"abc", "2x", "d", "1d2", "3 fortnights", "-", "1..2d", "99999999999w",
		"9223372036854775808ns", "NaN days", "inf hours", "1e300 weeks",
	}
	for _, bad := range inputs {
		_, err := ParseDuration(bad)
		assert.Truef(t, exterr.HasCode(err, exterr.CodeInvalidFormat), "input %q: %v", bad, err)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 seconds"},
		{250 * time.Millisecond, "250 milliseconds"},
		{time.Second, "1 second"},
		{2 * time.Hour, "2 hours"},
		{26*time.Hour + 3*time.Minute, "1 day, 2 hours and 3 minutes"},
		{time.Minute + 5*time.Second, "1 minute and 5 seconds"},
		{-90 * time.Second, "-1 minute and 30 seconds"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}

	assert.Equal(t, "1d 2h 3m", FormatDurationCompact(26*time.Hour+3*time.Minute))
	assert.Equal(t, "0s", FormatDurationCompact(0))
	assert.Equal(t, "-45s", FormatDurationCompact(-45*time.Second))
	assert.Equal(t, "500ms", FormatDurationCompact(500*time.Millisecond))
	assert.Equal(t, "-500ms", FormatDurationCompact(-500*time.Millisecond))
}

func TestFormatDurationExtremes(t *testing.T) {
	minDuration := time.Duration(math.MinInt64)
	maxDuration := time.Duration(math.MaxInt64)

	assert.Equal(t, "-106751 days, 23 hours, 47 minutes and 16 seconds", FormatDuration(minDuration))
	assert.Equal(t, "106751 days, 23 hours, 47 minutes and 16 seconds", FormatDuration(maxDuration))
	assert.Equal(t, "-106751d 23h 47m 16s", FormatDurationCompact(minDuration))
	assert.Equal(t, "106751d 23h 47m 16s", FormatDurationCompact(maxDuration))
}

func TestParse(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	for _, in := range []string{
		"2026-03-14T15:09:26Z",
		"2026-03-14 15:09:26",
		"14.03.2026 15:09:26",
		"03/14/2026 15:09:26",
	} {
		got, err := ParseInLocation(in, time.UTC)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %v", in, got)
	}

	d, err := ParseInLocation("2026-03-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = Parse("not a date")
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidFormat))
	_, err = Parse("")
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))
	_, err = ParseInLocation("2026-03-14", nil)
	assert.True(t, exterr.HasCode(err, exterr.CodeNilArgument))
}

func TestBoundaries(t *testing.T) {
	// Wednesday
	ref := time.Date(2026, 10, 14, 13, 45, 10, 500, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), StartOfDay(ref))
	assert.Equal(t, time.Date(2026, 10, 14, 23, 59, 59, 999999999, time.UTC), EndOfDay(ref))
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), StartOfWeek(ref))
	assert.Equal(t, time.Date(2026, 10, 18, 23, 59, 59, 999999999, time.UTC), EndOfWeek(ref))
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(ref))
	assert.Equal(t, time.Date(2026, 10, 31, 23, 59, 59, 999999999, time.UTC), EndOfMonth(ref))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), StartOfYear(ref))
	assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 999999999, time.UTC), EndOfYear(ref))

	sunday := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))

	feb := time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, EndOfMonth(feb).Day())
}

func TestBoundariesKeepLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ref := time.Date(2026, 10, 14, 1, 0, 0, 0, loc)
	assert.Equal(t, loc, StartOfDay(ref).Location())
	assert.Equal(t, 14, StartOfDay(ref).Day())
}

func TestCalendar(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 35, Age(birth, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 36, Age(birth, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, Age(birth, birth.AddDate(-1, 0, 0)))

	a := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))

	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2026))

	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}

func TestPredicates(t *testing.T) {
	sat := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.True(t, IsWeekend(sat))
	assert.False(t, IsWeekday(sat))
	assert.True(t, IsWeekday(mon))

	assert.True(t, IsBetween(mon, sat, mon))
	assert.False(t, IsBetween(sat, mon, mon.Add(time.Hour)))

	assert.Equal(t, sat, Clamp(sat.Add(-time.Hour), sat, mon))
	assert.Equal(t, mon, Clamp(mon.Add(time.Hour), sat, mon))
	assert.Equal(t, sat.Add(time.Hour), Clamp(sat.Add(time.Hour), sat, mon))
}

func TestRelative(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	withNow(t, at)

	assert.Equal(t, at.Add(-2*time.Hour), Ago(2*time.Hour))
	assert.Equal(t, at.Add(Days(3)), FromNow(Days(3)))
	assert.True(t, IsToday(at.Add(10*time.Hour)))
	assert.False(t, IsToday(at.Add(15*time.Hour)))
}

func TestUnix(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, int64(1767323045), ToUnix(ts))
	assert.Equal(t, ts, FromUnix(ToUnix(ts)))
}
