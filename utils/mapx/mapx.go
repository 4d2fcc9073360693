// File: mapx.go
// Title: Core Map Utilities
// Description: Generic helpers for building, filtering, merging and
//              serializing Go maps.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation with core map utilities
// - 2026-10-14 v0.2.0: GetOrAdd/AddOrUpdate, sorted keys, go-json encoding

package mapx

import (
	"cmp"
	"slices"

	"github.com/goccy/go-json"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

// Entry is a single key-value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Keys returns the keys of m in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns the values of m in unspecified order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Invert swaps keys and values. When several keys share a value, which one
// survives is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}
	inverted := make(map[V]K, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}

// Filter returns the entries for which predicate is true
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil {
		return nil
	}
	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Merge combines maps left to right; later maps win on conflicts
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}
	result := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone returns a shallow copy of m; nil stays nil
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Pick returns the entries of m whose key is in keys
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	result := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			result[k] = v
		}
	}
	return result
}

// Omit returns the entries of m whose key is not in keys
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	result := Clone(m)
	for _, k := range keys {
		delete(result, k)
	}
	return result
}

// GetOrDefault returns m[key], or def when key is absent
func GetOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// GetOrAdd returns m[key], storing factory(key) first when the key is absent.
// It is not safe for concurrent use; see Cache for that.
func GetOrAdd[K comparable, V any](m map[K]V, key K, factory func(K) V) (V, error) {
	if m == nil {
		var zero V
		return zero, errors.NilArgument(errors.ModuleMapx, "GetOrAdd", "m")
	}
	if v, ok := m[key]; ok {
		return v, nil
	}
	v := factory(key)
	m[key] = v
	return v, nil
}

// AddOrUpdate stores add when key is absent and update(existing) otherwise,
// returning the stored value
func AddOrUpdate[K comparable, V any](m map[K]V, key K, add V, update func(K, V) V) (V, error) {
	if m == nil {
		var zero V
		return zero, errors.NilArgument(errors.ModuleMapx, "AddOrUpdate", "m")
	}
	v, ok := m[key]
	if ok {
		v = update(key, v)
	} else {
		v = add
	}
	m[key] = v
	return v, nil
}

// Transform maps every entry to a new value
func Transform[K comparable, V, R any](m map[K]V, fn func(K, V) R) map[K]R {
	if m == nil {
		return nil
	}
	result := make(map[K]R, len(m))
	for k, v := range m {
		result[k] = fn(k, v)
	}
	return result
}

// ToSlice returns the entries of m sorted by key
func ToSlice[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for _, k := range SortedKeys(m) {
		entries = append(entries, Entry[K, V]{Key: k, Value: m[k]})
	}
	return entries
}

// FromSlice builds a map from entries; later duplicates win
func FromSlice[K comparable, V any](entries []Entry[K, V]) map[K]V {
	result := make(map[K]V, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result
}

// Equal reports whether both maps hold the same entries
func Equal[K, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		if vb, ok := b[k]; !ok || va != vb {
			return false
		}
	}
	return true
}

// ToJSON encodes m as a JSON object with keys in sorted order
func ToJSON[K comparable, V any](m map[K]V) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleMapx, "ToJSON", exterr.CodeConversionFailed, err)
	}
	return string(data), nil
}

// FromJSON decodes a JSON object into a new map
func FromJSON[K comparable, V any](data string) (map[K]V, error) {
	var result map[K]V
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, errors.InvalidFormat(errors.ModuleMapx, "FromJSON", data, "JSON object", err)
	}
	return result, nil
}
