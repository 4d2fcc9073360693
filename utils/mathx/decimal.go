// File: decimal.go
// Title: Decimal Helpers
// Description: Rounding modes, safe division and aggregation over
//              shopspring/decimal values for money and ratio arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation on big.Rat
// - 2026-10-15 v0.2.0: Switch to shopspring/decimal, add business helpers

package mathx

import (
	"github.com/shopspring/decimal"

	"github.com/msto63/extkit/core/errors"
)

// RoundingMode selects how Round treats the discarded digits
type RoundingMode int

const (
	// HalfUp rounds ties away from zero (commercial rounding)
	HalfUp RoundingMode = iota
	// HalfEven rounds ties to the even neighbour (banker's rounding)
	HalfEven
	// Down truncates toward zero
	Down
	// Up rounds away from zero
	Up
)

// String returns the mode name
func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "half-up"
	case HalfEven:
		return "half-even"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Round rounds value to places decimal places. Negative places round to
// tens, hundreds and so on.
func Round(value decimal.Decimal, places int32, mode RoundingMode) (decimal.Decimal, error) {
	switch mode {
	case HalfUp:
		return value.Round(places), nil
	case HalfEven:
		return value.RoundBank(places), nil
	case Down:
		return value.RoundDown(places), nil
	case Up:
		return value.RoundUp(places), nil
	default:
		return decimal.Zero, errors.InvalidArgument(errors.ModuleMathx, "Round", "mode", int(mode), "unknown rounding mode")
	}
}

// SafeDivide returns a / b, or an error instead of a panic when b is zero.
// The quotient carries decimal.DivisionPrecision digits.
func SafeDivide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, errors.InvalidArgument(errors.ModuleMathx, "SafeDivide", "divisor", b.String(), "must not be zero")
	}
	return a.Div(b), nil
}

// SumDecimals adds all values; zero for none
func SumDecimals(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// AverageDecimals returns the arithmetic mean of values
func AverageDecimals(values ...decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, errors.InvalidArgument(errors.ModuleMathx, "AverageDecimals", "values", 0, "must not be empty")
	}
	return SumDecimals(values...).Div(decimal.NewFromInt(int64(len(values)))), nil
}

var hundred = decimal.NewFromInt(100)

// Percentage returns percent % of value: Percentage(200, 15) = 30
func Percentage(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}

// ApplyDiscount reduces price by percent %
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	return price.Sub(Percentage(price, percent))
}

// GrossFromNet adds a tax rate given in percent to a net amount
func GrossFromNet(net, taxPercent decimal.Decimal) decimal.Decimal {
	return net.Add(Percentage(net, taxPercent))
}

// NetFromGross removes a tax rate given in percent from a gross amount
func NetFromGross(gross, taxPercent decimal.Decimal) (decimal.Decimal, error) {
	return SafeDivide(gross.Mul(hundred), hundred.Add(taxPercent))
}
