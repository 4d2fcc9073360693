// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic transformation, search, set and aggregation helpers
//              for Go slices. Helpers never modify their input; results are
//              freshly allocated unless documented otherwise.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-06
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-06 v0.1.0: Initial implementation with core slice utilities
// - 2026-10-14 v0.2.0: Membership helpers, AddUnique, RemoveWhere, Shuffle

package slicex

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/msto63/extkit/core/errors"
)

// Number is the set of element types accepted by Sum
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ===============================
// Transformation
// ===============================

// Filter returns the elements for which predicate is true
func Filter[T any](s []T, predicate func(T) bool) []T {
	if s == nil {
		return nil
	}
	result := make([]T, 0, len(s))
	for _, v := range s {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Map applies fn to every element
func Map[T, R any](s []T, fn func(T) R) []R {
	if s == nil {
		return nil
	}
	result := make([]R, len(s))
	for i, v := range s {
		result[i] = fn(v)
	}
	return result
}

// Reduce folds s from the left starting with initial
func Reduce[T, R any](s []T, initial R, fn func(R, T) R) R {
	acc := initial
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// ForEach calls fn for every element in order
func ForEach[T any](s []T, fn func(int, T)) {
	for i, v := range s {
		fn(i, v)
	}
}

// Chunk splits s into slices of size elements; the last one may be shorter.
// The chunks share memory with s.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, errors.InvalidArgument(errors.ModuleSlicex, "Chunk", "size", size, "must be positive")
	}
	if len(s) == 0 {
		return nil, nil
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end:end])
	}
	return chunks, nil
}

// Flatten concatenates nested slices
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, s := range nested {
		total += len(s)
	}
	result := make([]T, 0, total)
	for _, s := range nested {
		result = append(result, s...)
	}
	return result
}

// Reverse returns a reversed copy of s
func Reverse[T any](s []T) []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}

// Shuffle returns a randomly permuted copy of s
func Shuffle[T any](s []T) []T {
	result := append([]T(nil), s...)
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// ===============================
// Sets
// ===============================

// Unique returns s without duplicates, keeping first occurrences in order
func Unique[T comparable](s []T) []T {
	return UniqueBy(s, func(v T) T { return v })
}

// UniqueBy is Unique with a caller-supplied identity
func UniqueBy[T any, K comparable](s []T, key func(T) K) []T {
	if s == nil {
		return nil
	}
	seen := make(map[K]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Union returns the distinct elements of a followed by those of b
func Union[T comparable](a, b []T) []T {
	return Unique(append(append(make([]T, 0, len(a)+len(b)), a...), b...))
}

// Intersect returns the distinct elements of a that also occur in b
func Intersect[T comparable](a, b []T) []T {
	inB := toSet(b)
	return Unique(Filter(a, func(v T) bool {
		_, ok := inB[v]
		return ok
	}))
}

// Difference returns the elements of a that do not occur in b
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)
	return Filter(a, func(v T) bool {
		_, ok := inB[v]
		return !ok
	})
}

func toSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// AddUnique appends v to s unless it is already present and reports whether
// it was added
func AddUnique[T comparable](s []T, v T) ([]T, bool) {
	if Contains(s, v) {
		return s, false
	}
	return append(s, v), true
}

// RemoveWhere returns s without the elements for which predicate is true and
// the number removed
func RemoveWhere[T any](s []T, predicate func(T) bool) ([]T, int) {
	kept := Filter(s, func(v T) bool { return !predicate(v) })
	return kept, len(s) - len(kept)
}

// ===============================
// Search
// ===============================

// Contains reports whether v occurs in s
func Contains[T comparable](s []T, v T) bool {
	return IndexOf(s, v) >= 0
}

// In reports whether v equals one of candidates
func In[T comparable](v T, candidates ...T) bool {
	return Contains(candidates, v)
}

// IndexOf returns the first index of v in s, or -1
func IndexOf[T comparable](s []T, v T) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// Find returns the first element for which predicate is true
func Find[T any](s []T, predicate func(T) bool) (T, bool) {
	for _, v := range s {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Every reports whether predicate holds for all elements; true for empty s
func Every[T any](s []T, predicate func(T) bool) bool {
	for _, v := range s {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Some reports whether predicate holds for at least one element
func Some[T any](s []T, predicate func(T) bool) bool {
	_, found := Find(s, predicate)
	return found
}

// Count returns the number of elements for which predicate is true
func Count[T any](s []T, predicate func(T) bool) int {
	n := 0
	for _, v := range s {
		if predicate(v) {
			n++
		}
	}
	return n
}

// IsNullOrEmpty reports whether s is nil or has no elements
func IsNullOrEmpty[T any](s []T) bool {
	return len(s) == 0
}

// ===============================
// Aggregation
// ===============================

// Min returns the smallest element; false when s is empty
func Min[T cmp.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	m := s[0]
	for _, v := range s[1:] {
		m = min(m, v)
	}
	return m, true
}

// Max returns the largest element; false when s is empty
func Max[T cmp.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	m := s[0]
	for _, v := range s[1:] {
		m = max(m, v)
	}
	return m, true
}

// Sum adds all elements
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// GroupBy buckets elements by key, preserving order within each bucket
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Partition splits s into the elements matching predicate and the rest
func Partition[T any](s []T, predicate func(T) bool) (matched, rest []T) {
	for _, v := range s {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// Take returns a copy of the first n elements
func Take[T any](s []T, n int) []T {
	n = max(0, min(n, len(s)))
	return append([]T(nil), s[:n]...)
}

// Drop returns a copy of s without its first n elements
func Drop[T any](s []T, n int) []T {
	n = max(0, min(n, len(s)))
	return append([]T(nil), s[n:]...)
}

// Join formats every element with %v and joins them with sep. A nil or empty
// slice yields "".
func Join[T any](s []T, sep string) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
