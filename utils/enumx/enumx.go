// File: enumx.go
// Title: Enum Display Registry
// Description: An explicit table mapping enum values to display strings and
//              back, filled once at startup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package enumx

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

// Registry maps values of E to display strings. Lookups by display string
// are case-insensitive. A Registry is safe for concurrent use.
type Registry[E comparable] struct {
	mu      sync.RWMutex
	display map[E]string
	byName  map[string]E
	order   []E
}

// NewRegistry returns an empty registry
func NewRegistry[E comparable]() *Registry[E] {
	return &Registry[E]{
		display: make(map[E]string),
		byName:  make(map[string]E),
	}
}

// foldKey normalizes a display string for lookups. Casers keep state, so
// each call gets its own.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Register adds value with its display string. Registering a value twice or
// reusing a display string (ignoring case) is an error.
func (r *Registry[E]) Register(value E, display string) error {
	key := foldKey(display)
	if key == "" {
		return errors.InvalidArgument(errors.ModuleEnumx, "Register", "display", display, "must not be blank")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.display[value]; ok {
		return alreadyRegistered("value", fmt.Sprint(value), existing)
	}
	if other, ok := r.byName[key]; ok {
		return alreadyRegistered("display", display, fmt.Sprint(other))
	}
	r.display[value] = strings.TrimSpace(display)
	r.byName[key] = value
	r.order = append(r.order, value)
	return nil
}

func alreadyRegistered(kind, got, existing string) *exterr.Error {
	return errors.NewErrorBuilder(errors.ModuleEnumx).
		Operation("Register").
		Messagef("%s %q is already registered (%s)", kind, got, existing).
		Code(exterr.CodeAlreadyExists).
		Detail(kind, got).
		Build()
}

// MustRegister is Register that panics on error. It returns r for chaining:
//
//	var colors = enumx.NewRegistry[Color]().
//		MustRegister(Red, "Red").
//		MustRegister(Green, "Green")
func (r *Registry[E]) MustRegister(value E, display string) *Registry[E] {
	if err := r.Register(value, display); err != nil {
		panic(err)
	}
	return r
}

// Display returns the display string of value, or fmt.Sprint(value) when
// the value is not registered
func (r *Registry[E]) Display(value E) string {
	if s, ok := r.Lookup(value); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Lookup returns the display string of value and whether it is registered
func (r *Registry[E]) Lookup(value E) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.display[value]
	return s, ok
}

// Parse returns the value registered under display, ignoring case and
// surrounding whitespace
func (r *Registry[E]) Parse(display string) (E, error) {
	r.mu.RLock()
	v, ok := r.byName[foldKey(display)]
	r.mu.RUnlock()
	if !ok {
		var zero E
		return zero, errors.EnumxUnknownDisplay(display)
	}
	return v, nil
}

// ParseOrDefault is Parse with a fallback for unknown display strings
func (r *Registry[E]) ParseOrDefault(display string, def E) E {
	if v, err := r.Parse(display); err == nil {
		return v
	}
	return def
}

// Values returns the registered values in registration order
func (r *Registry[E]) Values() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]E(nil), r.order...)
}

// Displays returns the display strings in registration order
func (r *Registry[E]) Displays() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	for i, v := range r.order {
		out[i] = r.display[v]
	}
	return out
}

// Len returns the number of registered values
func (r *Registry[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
