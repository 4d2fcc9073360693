// File: like.go
// Title: Wildcard Matching
// Description: Implements "*" wildcard matching of strings. The star matches
//              any run of characters, including the empty run; every other
//              character only matches itself.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"golang.org/x/text/cases"
)

// Wildcard is the only special character understood by IsLike
const Wildcard = '*'

// IsLike reports whether s matches pattern, where '*' matches any sequence of
// runes. A pattern without '*' matches only s itself.
//
//	IsLike("report-2024.csv", "report-*.csv") // true
//	IsLike("abc", "a*d")                      // false
func IsLike(s, pattern string) bool {
	return likeRunes([]rune(s), []rune(pattern))
}

// IsLikeFold is IsLike under Unicode case folding
func IsLikeFold(s, pattern string) bool {
	folder := cases.Fold()
	return likeRunes([]rune(folder.String(s)), []rune(folder.String(pattern)))
}

// IsLikeAny reports whether s matches at least one of patterns
func IsLikeAny(s string, patterns ...string) bool {
	runes := []rune(s)
	for _, p := range patterns {
		if likeRunes(runes, []rune(p)) {
			return true
		}
	}
	return false
}

// likeRunes matches greedily and, on mismatch, backtracks to the most recent
// star and lets it absorb one more rune. Runs in O(len(s)*len(p)) worst case.
func likeRunes(s, p []rune) bool {
	si, pi := 0, 0
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(p) && p[pi] == Wildcard:
			star = pi
			mark = si
			pi++
		case pi < len(p) && p[pi] == s[si]:
			si++
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == Wildcard {
		pi++
	}
	return pi == len(p)
}
