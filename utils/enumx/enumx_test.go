// File: enumx_test.go
// Title: Enum Display Registry Tests
// Description: Tests for registration, display lookup and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package enumx

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterr "github.com/msto63/extkit/core/error"
)

type status int

const (
	statusOpen status = iota + 1
	statusInProgress
	statusClosed
	statusArchived
)

func newStatuses() *Registry[status] {
	return NewRegistry[status]().
		MustRegister(statusOpen, "Open").
		MustRegister(statusInProgress, "In Progress").
		MustRegister(statusClosed, "Geschlossen")
}

func TestDisplay(t *testing.T) {
	r := newStatuses()

	assert.Equal(t, "In Progress", r.Display(statusInProgress))
	assert.Equal(t, "4", r.Display(statusArchived))

	_, ok := r.Lookup(statusArchived)
	assert.False(t, ok)
	assert.Equal(t, 3, r.Len())
}

func TestParse(t *testing.T) {
	r := newStatuses()

	tests := []struct {
		input string
		want  status
	}{
		{"Open", statusOpen},
		{"open", statusOpen},
		{"  IN PROGRESS ", statusInProgress},
		{"GESCHLOSSEN", statusClosed},
	}
	for _, tt := range tests {
		got, err := r.Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := r.Parse("Done")
	require.Error(t, err)
	assert.True(t, exterr.HasCode(err, exterr.CodeNotFound))

	assert.Equal(t, statusArchived, r.ParseOrDefault("Done", statusArchived))
	assert.Equal(t, statusOpen, r.ParseOrDefault("OPEN", statusArchived))
}

func TestParseFoldsUnicode(t *testing.T) {
	r := NewRegistry[string]().MustRegister("street", "Straße")
	v, err := r.Parse("STRASSE")
	require.NoError(t, err)
	assert.Equal(t, "street", v)
}

func TestRoundTrip(t *testing.T) {
	r := newStatuses()
	for _, v := range r.Values() {
		got, err := r.Parse(r.Display(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestOrder(t *testing.T) {
	r := newStatuses()
	assert.Equal(t, []status{statusOpen, statusInProgress, statusClosed}, r.Values())
	assert.Equal(t, []string{"Open", "In Progress", "Geschlossen"}, r.Displays())

	values := r.Values()
	values[0] = statusArchived
	assert.Equal(t, statusOpen, r.Values()[0], "Values returns a copy")
}

func TestRegisterErrors(t *testing.T) {
	r := newStatuses()

	err := r.Register(statusOpen, "Offen")
	assert.True(t, exterr.HasCode(err, exterr.CodeAlreadyExists))

	err = r.Register(statusArchived, "OPEN")
	assert.True(t, exterr.HasCode(err, exterr.CodeAlreadyExists))

	err = r.Register(statusArchived, "  ")
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))

	assert.Equal(t, 3, r.Len(), "failed registrations leave the table unchanged")

	assert.Panics(t, func() { r.MustRegister(statusOpen, "again") })
}

func TestConcurrentLookups(t *testing.T) {
	r := newStatuses()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := r.Parse("in progress"); err != nil {
					t.Error(err)
					return
				}
				_ = r.Display(statusClosed)
			}
		}()
	}
	wg.Wait()

	var target *exterr.Error
	_, err := r.Parse("missing")
	assert.True(t, errors.As(err, &target))
}
