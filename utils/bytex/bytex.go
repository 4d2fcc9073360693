// File: bytex.go
// Title: Array Search Helpers
// Description: Sub-array search over slices of any comparable element type,
//              with byte slices as the common case.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bytex

import (
	"github.com/msto63/extkit/core/errors"
)

// FindArrayInArray returns the index of the first occurrence of needle in
// haystack, -1 when it does not occur and 0 for an empty needle. Either
// argument being nil is an error.
//
// The scan is linear: at each candidate position elements are compared until
// the first mismatch, then the search restarts one position further on.
func FindArrayInArray[T comparable](haystack, needle []T) (int, error) {
	if haystack == nil {
		return -1, errors.BytexNilArgument("FindArrayInArray", "haystack")
	}
	if needle == nil {
		return -1, errors.BytexNilArgument("FindArrayInArray", "needle")
	}
	return IndexOf(haystack, needle), nil
}

// IndexOf is FindArrayInArray without nil checks; nil behaves like empty
func IndexOf[T comparable](haystack, needle []T) int {
	if len(needle) == 0 {
		return 0
	}
	last := len(haystack) - len(needle)
outer:
	for i := 0; i <= last; i++ {
		for j, v := range needle {
			if haystack[i+j] != v {
				continue outer
			}
		}
		return i
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of needle, -1 when
// absent and len(haystack) for an empty needle
func LastIndexOf[T comparable](haystack, needle []T) int {
	if len(needle) == 0 {
		return len(haystack)
	}
outer:
	for i := len(haystack) - len(needle); i >= 0; i-- {
		for j, v := range needle {
			if haystack[i+j] != v {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Contains reports whether needle occurs in haystack
func Contains[T comparable](haystack, needle []T) bool {
	return IndexOf(haystack, needle) >= 0
}

// StartsWith reports whether s begins with prefix
func StartsWith[T comparable](s, prefix []T) bool {
	return len(prefix) <= len(s) && IndexOf(s[:len(prefix)], prefix) == 0
}

// EndsWith reports whether s ends with suffix
func EndsWith[T comparable](s, suffix []T) bool {
	return len(suffix) <= len(s) && IndexOf(s[len(s)-len(suffix):], suffix) == 0
}
