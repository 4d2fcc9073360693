// File: convx.go
// Title: String Conversion Helpers
// Description: Typed parsing of strings into numbers, booleans, durations,
//              times and decimals. Errors are returned by default; the
//              OrDefault variants swallow them and return a fallback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package convx

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/timex"
)

// To parses s into T. Supported targets are string, bool, int, int8..int64,
// uint, uint8..uint64, float32, float64, time.Duration, time.Time and
// decimal.Decimal. Other targets yield an unsupported type error.
func To[T any](s string) (T, error) {
	var zero T
	v, err := convert(s, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// ToOrDefault is To that returns def instead of an error
func ToOrDefault[T any](s string, def T) T {
	v, err := To[T](s)
	if err != nil {
		return def
	}
	return v
}

// MustTo is To that panics on error. Use it for compile-time constants only.
func MustTo[T any](s string) T {
	v, err := To[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// ToType parses s into a value of type t. It backs To and is used by
// reflection-based callers that only know the target at runtime.
func ToType(s string, t reflect.Type) (any, error) {
	if t == nil {
		return nil, errors.NilArgument(errors.ModuleConvx, "ToType", "t")
	}
	return convert(s, t)
}

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
	decimalType  = reflect.TypeFor[decimal.Decimal]()
)

func convert(s string, t reflect.Type) (any, error) {
	switch t {
	case durationType:
		d, err := timex.ParseDuration(s)
		if err != nil {
			return nil, errors.ConvxConversionFailed(s, t.String(), err)
		}
		return d, nil
	case timeType:
		tm, err := timex.Parse(s)
		if err != nil {
			return nil, errors.ConvxConversionFailed(s, t.String(), err)
		}
		return tm, nil
	case decimalType:
		return ToDecimal(s)
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(s)
	case reflect.Bool:
		b, err := ToBool(s)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return nil, errors.ConvxConversionFailed(s, t.String(), err)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return nil, errors.ConvxConversionFailed(s, t.String(), err)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), t.Bits())
		if err != nil {
			return nil, errors.ConvxConversionFailed(s, t.String(), err)
		}
		out.SetFloat(f)
	default:
		return nil, errors.ConvxUnsupportedType(t.String())
	}
	return out.Interface(), nil
}

// ToInt parses a base-10 int, ignoring surrounding whitespace
func ToInt(s string) (int, error) { return To[int](s) }

// ToInt64 parses a base-10 int64, ignoring surrounding whitespace
func ToInt64(s string) (int64, error) { return To[int64](s) }

// ToFloat parses a float64, ignoring surrounding whitespace
func ToFloat(s string) (float64, error) { return To[float64](s) }

// ToBool accepts true/false, yes/no, on/off, y/n and 1/0 in any case
func ToBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "y", "1":
		return true, nil
	case "false", "no", "off", "n", "0":
		return false, nil
	}
	return false, errors.ConvxConversionFailed(s, "bool", nil)
}

// ToDecimal parses an exact decimal number
func ToDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.ConvxConversionFailed(s, "decimal.Decimal", err)
	}
	return d, nil
}
