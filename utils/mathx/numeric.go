// File: numeric.go
// Title: Generic Numeric Helpers
// Description: Parity, primality, range checks, percentages, byte size
//              constructors and ordinal formatting for any integer or float
//              type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Byte sizes, FormatBytes, Ordinal

package mathx

import (
	"cmp"
	"strconv"

	"github.com/msto63/extkit/core/errors"
)

// Integer is any signed or unsigned integer type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is any signed integer or float type
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Number is any integer or float type
type Number interface {
	Integer | ~float32 | ~float64
}

// IsEven reports whether n is divisible by two
func IsEven[T Integer](n T) bool { return n%2 == 0 }

// IsOdd reports whether n is not divisible by two
func IsOdd[T Integer](n T) bool { return n%2 != 0 }

// IsPrime reports whether n is a prime number using trial division by 6k±1
func IsPrime[T Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := T(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Between reports whether lo <= v <= hi
func Between[T cmp.Ordered](v, lo, hi T) bool { return v >= lo && v <= hi }

// InRange reports whether lo <= v < hi
func InRange[T cmp.Ordered](v, lo, hi T) bool { return v >= lo && v < hi }

// Clamp limits v to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T { return max(lo, min(v, hi)) }

// Abs returns the absolute value of n. The minimum value of a signed integer
// type has no positive counterpart and is returned unchanged.
func Abs[T Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Times calls fn n times with the iteration index
func Times(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// PercentOf returns part as a percentage of whole
func PercentOf[T Number](part, whole T) (float64, error) {
	if whole == 0 {
		return 0, errors.InvalidArgument(errors.ModuleMathx, "PercentOf", "whole", whole, "must not be zero")
	}
	return float64(part) / float64(whole) * 100, nil
}

// ===============================
// Byte sizes
// ===============================

// Binary size units
const (
	KB int64 = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

// Kilobytes returns n KiB in bytes
func Kilobytes[T Integer](n T) int64 { return int64(n) * KB }

// Megabytes returns n MiB in bytes
func Megabytes[T Integer](n T) int64 { return int64(n) * MB }

// Gigabytes returns n GiB in bytes
func Gigabytes[T Integer](n T) int64 { return int64(n) * GB }

// Terabytes returns n TiB in bytes
func Terabytes[T Integer](n T) int64 { return int64(n) * TB }

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a byte count with binary units and one decimal place:
// 1536 -> "1.5 KB". Counts below 1024 are shown without decimals.
func FormatBytes(n int64) string {
	if n > -KB && n < KB {
		return strconv.FormatInt(n, 10) + " B"
	}
	value := float64(n)
	unit := 0
	for (value >= 1024 || value <= -1024) && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + sizeUnits[unit]
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 11th
func Ordinal[T Integer](n T) string {
	s := strconv.FormatInt(int64(n), 10)
	abs := int64(n)
	if abs < 0 {
		abs = -abs
	}
	if r := abs % 100; r >= 11 && r <= 13 {
		return s + "th"
	}
	switch abs % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}
