// File: duration.go
// Title: Duration Helpers
// Description: Duration constructors from integer counts, a duration parser
//              that understands day and week units, and human-readable
//              duration formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-07
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-07 v0.1.0: Initial implementation with parsing and formatting
// - 2026-10-14 v0.2.0: Generic constructors, compound d/w units

package timex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/extkit/core/errors"
)

// Calendar-free duration units. A day is always 24 hours here.
const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Integer is the set of count types accepted by the duration constructors
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Milliseconds returns n milliseconds
func Milliseconds[T Integer](n T) time.Duration { return time.Duration(n) * time.Millisecond }

// Seconds returns n seconds
func Seconds[T Integer](n T) time.Duration { return time.Duration(n) * time.Second }

// Minutes returns n minutes
func Minutes[T Integer](n T) time.Duration { return time.Duration(n) * time.Minute }

// Hours returns n hours
func Hours[T Integer](n T) time.Duration { return time.Duration(n) * time.Hour }

// Days returns n 24-hour days
func Days[T Integer](n T) time.Duration { return time.Duration(n) * Day }

// Weeks returns n 7-day weeks
func Weeks[T Integer](n T) time.Duration { return time.Duration(n) * Week }

var durationUnits = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond,
	"µs": time.Microsecond,
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  Day,
	"w":  Week,
}

var wordUnits = map[string]time.Duration{
	"millisecond": time.Millisecond,
	"second":      time.Second,
	"sec":         time.Second,
	"minute":      time.Minute,
	"min":         time.Minute,
	"hour":        time.Hour,
	"hr":          time.Hour,
	"day":         Day,
	"week":        Week,
}

// ParseDuration parses a duration. On top of time.ParseDuration it accepts
// "d" and "w" units in compound values ("1w2d", "1d12h30m") and the spelled
// out form "<number> <unit>" ("3 days", "1.5 hours").
func ParseDuration(value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, errors.InvalidArgument(errors.ModuleTimex, "ParseDuration", "value", value, "must not be empty")
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if d, ok := parseWordDuration(s); ok {
		return d, nil
	}
	d, err := parseCompound(s)
	if err != nil {
		return 0, errors.InvalidFormat(errors.ModuleTimex, "ParseDuration", value, "duration such as 90s, 1h30m, 2d or 1w", err)
	}
	return d, nil
}

func parseWordDuration(s string) (time.Duration, bool) {
	parts := strings.Fields(strings.ToLower(s))
	if len(parts) != 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, false
	}
	unit, ok := wordUnits[strings.TrimSuffix(parts[1], "s")]
	if !ok {
		return 0, false
	}
	total := n * float64(unit)
	// float64(math.MaxInt64) rounds up to 2^63, which no Duration can hold
	if math.IsNaN(total) || math.Abs(total) >= math.MaxInt64 {
		return 0, false
	}
	return time.Duration(total), true
}

func parseCompound(s string) (time.Duration, error) {
	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}

	var total float64
	for s != "" {
		i := 0
		for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("expected number at %q", s)
		}
		n, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, err
		}
		s = s[i:]

		j := 0
		for j < len(s) && s[j] != '.' && (s[j] < '0' || s[j] > '9') {
			j++
		}
		unit, ok := durationUnits[s[:j]]
		if !ok {
			return 0, fmt.Errorf("unknown unit %q", s[:j])
		}
		s = s[j:]
		total += n * float64(unit)
	}

	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("duration out of range")
	}
	return time.Duration(sign * total), nil
}

var (
	wordUnitNames = []durationUnit{
		{Day, "day"},
		{time.Hour, "hour"},
		{time.Minute, "minute"},
		{time.Second, "second"},
	}
	compactUnitNames = []durationUnit{
		{Day, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	}
)

type durationUnit struct {
	size time.Duration
	name string
}

// magnitude returns |d| as uint64, which also holds the magnitude of
// math.MinInt64
func magnitude(d time.Duration) (abs uint64, negative bool) {
	if d < 0 {
		return uint64(-(d + 1)) + 1, true
	}
	return uint64(d), false
}

// splitUnits breaks abs into whole counts of units, skipping zero counts,
// and returns the remainder below the smallest unit
func splitUnits(abs uint64, units []durationUnit, format func(uint64, string) string) ([]string, uint64) {
	var parts []string
	for _, u := range units {
		size := uint64(u.size)
		if n := abs / size; n > 0 {
			parts = append(parts, format(n, u.name))
			abs -= n * size
		}
	}
	return parts, abs
}

// FormatDuration renders d in words, largest unit first:
// 26h3m -> "1 day, 2 hours and 3 minutes". Sub-second durations are shown in
// milliseconds.
func FormatDuration(d time.Duration) string {
	abs, negative := magnitude(d)
	sign := ""
	if negative {
		sign = "-"
	}
	if abs < uint64(time.Second) {
		if ms := abs / uint64(time.Millisecond); ms > 0 {
			return sign + plural(ms, "millisecond")
		}
		return "0 seconds"
	}

	parts, _ := splitUnits(abs, wordUnitNames, plural)
	if len(parts) == 1 {
		return sign + parts[0]
	}
	return sign + strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// FormatDurationCompact renders d as "1d 2h 3m 4s", dropping zero units
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	abs, negative := magnitude(d)
	sign := ""
	if negative {
		sign = "-"
	}
	parts, rest := splitUnits(abs, compactUnitNames, func(n uint64, name string) string {
		return strconv.FormatUint(n, 10) + name
	})
	if len(parts) == 0 {
		return sign + time.Duration(rest).String()
	}
	return sign + strings.Join(parts, " ")
}

func plural(n uint64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.FormatUint(n, 10) + " " + unit + "s"
}
