// File: combined.go
// Title: Aggregate Errors
// Description: Implements Combined, an error value that collects the failures of
//              several independent operations (for example a batch of file
//              copies) so they can be reported together once the batch is done.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"strings"
)

// Combined aggregates several errors into one. It is immutable once built.
type Combined struct {
	message string
	errs    []error
}

// NewCombined creates a Combined error from the non-nil members of errs.
func NewCombined(message string, errs ...error) *Combined {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if message == "" {
		message = "one or more errors occurred"
	}
	return &Combined{message: message, errs: kept}
}

// Combine returns nil when every err is nil and a *Combined otherwise.
func Combine(message string, errs ...error) error {
	c := NewCombined(message, errs...)
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

// Error lists every member error on its own line.
func (c *Combined) Error() string {
	switch len(c.errs) {
	case 0:
		return c.message
	case 1:
		return fmt.Sprintf("%s: %s", c.message, c.errs[0].Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d errors):", c.message, len(c.errs))
	for i, err := range c.errs {
		fmt.Fprintf(&b, "\n  [%d] %s", i+1, err.Error())
	}
	return b.String()
}

// Message returns the summary message without the member errors.
func (c *Combined) Message() string { return c.message }

// Errors returns a copy of the member errors in the order they were added.
func (c *Combined) Errors() []error {
	result := make([]error, len(c.errs))
	copy(result, c.errs)
	return result
}

// Len returns the number of member errors.
func (c *Combined) Len() int { return len(c.errs) }

// Unwrap exposes the members to errors.Is and errors.As.
func (c *Combined) Unwrap() []error { return c.Errors() }

// Code always reports CodeAggregate.
func (c *Combined) Code() Code { return CodeAggregate }

// Is matches the aggregate sentinel.
func (c *Combined) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.sentinel && t.code == CodeAggregate
}
