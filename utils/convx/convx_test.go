// File: convx_test.go
// Title: String Conversion Tests
// Description: Tests for To, ToOrDefault, MustTo and the typed helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial tests

package convx

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterr "github.com/msto63/extkit/core/error"
	exterrors "github.com/msto63/extkit/core/errors"
)

type level string

func TestTo(t *testing.T) {
	i, err := To[int](" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	i8, err := To[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)

	u, err := To[uint16]("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), u)

	f, err := To[float32]("1.5")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	d, err := To[time.Duration]("1d6h")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Hour, d)

	ts, err := To[time.Time]("2026-10-15T08:00:00Z")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)))

	dec, err := To[decimal.Decimal]("19.99")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("19.99").Equal(dec))

	lv, err := To[level]("debug")
	require.NoError(t, err)
	assert.Equal(t, level("debug"), lv)

	b, err := To[bool]("ON")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestToErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		code exterr.Code
	}{
		{"int syntax", func() error { _, err := To[int]("4x"); return err }, exterr.CodeConversionFailed},
		{"int8 overflow", func() error { _, err := To[int8]("128"); return err }, exterr.CodeConversionFailed},
		{"uint negative", func() error { _, err := To[uint]("-1"); return err }, exterr.CodeConversionFailed},
		{"duration", func() error { _, err := To[time.Duration]("soon"); return err }, exterr.CodeConversionFailed},
		{"time", func() error { _, err := To[time.Time]("yesterday"); return err }, exterr.CodeConversionFailed},
		{"decimal", func() error { _, err := To[decimal.Decimal]("1,5"); return err }, exterr.CodeConversionFailed},
		{"slice", func() error { _, err := To[[]int]("1"); return err }, exterr.CodeUnsupportedType},
		{"interface", func() error { _, err := To[any]("1"); return err }, exterr.CodeUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.Equal(t, tt.code, exterr.GetCode(err))
		})
	}

	_, err := ToInt("nope")
	assert.True(t, errors.Is(err, exterrors.ErrConversionFailed))
}

func TestToOrDefault(t *testing.T) {
	assert.Equal(t, 7, ToOrDefault("x", 7))
	assert.Equal(t, 3, ToOrDefault("3", 7))
	assert.Equal(t, time.Minute, ToOrDefault("bad", time.Minute))
}

func TestMustTo(t *testing.T) {
	assert.Equal(t, int64(9), MustTo[int64]("9"))
	assert.Panics(t, func() { MustTo[int]("nine") })
}

func TestToBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "yes", "Y", "on", "1"} {
		b, err := ToBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"false", "No", "off", "n", "0", " false "} {
		b, err := ToBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}
	_, err := ToBool("maybe")
	assert.True(t, exterr.HasCode(err, exterr.CodeConversionFailed))
}

func TestTypedHelpers(t *testing.T) {
	n, err := ToInt64("-9000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), n)

	f, err := ToFloat("2.5e3")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, f)

	_, err = ToDecimal("")
	assert.Error(t, err)
}

func TestToType(t *testing.T) {
	v, err := ToType("12", reflect.TypeFor[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(12), v)

	_, err = ToType("12", nil)
	assert.True(t, exterr.HasCode(err, exterr.CodeNilArgument))
}
