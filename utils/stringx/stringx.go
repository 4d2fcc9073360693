// File: stringx.go
// Title: Core String Helpers
// Description: Emptiness checks, rune-safe slicing, padding, searching and
//              joining helpers that complement the strings package.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-05
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-05 v0.1.0: Initial implementation with core utilities
// - 2026-10-13 v0.2.0: Left/Right/Between, Join, WordWrap, occurrence counting
// - 2026-10-19 v0.2.1: Join delegates to slicex.Join

package stringx

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/slicex"
)

const maxInterned = 1024

var (
	internMu    sync.RWMutex
	internCache = make(map[string]string)
)

// Intern returns a canonical copy of s so that repeated values share memory.
// The table is bounded; when full it is reset.
func Intern(s string) string {
	if s == "" {
		return ""
	}

	internMu.RLock()
	interned, ok := internCache[s]
	internMu.RUnlock()
	if ok {
		return interned
	}

	internMu.Lock()
	defer internMu.Unlock()
	if interned, ok := internCache[s]; ok {
		return interned
	}
	if len(internCache) >= maxInterned {
		clear(internCache)
	}
	interned = strings.Clone(s)
	internCache[interned] = interned
	return interned
}

// IsEmpty reports whether s has length zero
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or consists only of whitespace
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// IsNotEmpty is the inverse of IsEmpty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns def when s is blank
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// DefaultIfEmpty returns def when s is empty
func DefaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// FirstNonBlank returns the first candidate that is not blank
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes. When truncation happens the
// result ends with ellipsis, unless the ellipsis alone would not fit.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// Left returns the first n runes of s
func Left(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}

// Right returns the last n runes of s
func Right(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[len(runes)-n:])
}

// SafeSubstring returns up to length runes starting at rune offset start.
// Out-of-range bounds are clipped instead of panicking.
func SafeSubstring(s string, start, length int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start >= len(runes) || length <= 0 {
		return ""
	}
	end := start + length
	if end > len(runes) || end < start {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Reverse reverses s rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ContainsIgnoreCase reports whether substr is within s under Unicode case folding
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// EqualsIgnoreCase reports whether a and b are equal under Unicode case folding
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ContainsAny reports whether s contains at least one of substrs
func ContainsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every one of substrs
func ContainsAll(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// PadLeft pads s on the left with pad until it is width runes long
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad until it is width runes long
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center pads s on both sides; an odd remainder goes to the right
func Center(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}

// RepeatWithSeparator repeats s count times joined by sep
func RepeatWithSeparator(s, sep string, count int) string {
	if count <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s)*count + len(sep)*(count-1))
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}

// RemoveChars removes every rune of chars from s
func RemoveChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// KeepChars keeps only the runes of s that appear in chars
func KeepChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return r
		}
		return -1
	}, s)
}

// Between returns the text between the first open and the next close after it
func Between(s, open, close string) (string, bool) {
	_, after, found := strings.Cut(s, open)
	if !found {
		return "", false
	}
	inner, _, found := strings.Cut(after, close)
	if !found {
		return "", false
	}
	return inner, true
}

// Join formats every element with %v and joins them with sep. A nil or empty
// slice yields "".
func Join[T any](items []T, sep string) string {
	return slicex.Join(items, sep)
}

// SplitLines splits s on \n, \r\n and \r
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// WordWrap breaks s into lines of at most width runes on whitespace. Words
// longer than width are placed on their own line unbroken.
func WordWrap(s string, width int) (string, error) {
	if width <= 0 {
		return "", errors.InvalidArgument(errors.ModuleStringx, "WordWrap", "width", width, "must be positive")
	}

	var (
		b       strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(s) {
		wl := utf8.RuneCountInString(word)
		switch {
		case lineLen == 0:
		case lineLen+1+wl > width:
			b.WriteByte('\n')
			lineLen = 0
		default:
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += wl
	}
	return b.String(), nil
}

// CountOccurrences counts non-overlapping occurrences of substr in s.
// An empty substr counts zero.
func CountOccurrences(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(s, substr)
}
