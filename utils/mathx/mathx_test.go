// File: mathx_test.go
// Title: Numeric Helper Tests
// Description: Tests for the generic numeric helpers and the decimal
//              rounding and division helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-08 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Decimal rounding modes and byte sizes

package mathx

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterr "github.com/msto63/extkit/core/error"
)

func TestParityAndPrimes(t *testing.T) {
	assert.True(t, IsEven(0))
	assert.True(t, IsEven(-4))
	assert.True(t, IsOdd(uint8(7)))
	assert.True(t, IsOdd(-3))

	var primes []int
	for n := -3; n <= 50; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, primes)
	assert.True(t, IsPrime(uint64(2147483647)))
	assert.False(t, IsPrime(int64(2147483647)*3))
	assert.True(t, IsPrime(uint8(251)))
}

func TestRanges(t *testing.T) {
	assert.True(t, Between(5, 1, 5))
	assert.False(t, InRange(5, 1, 5))
	assert.True(t, InRange(1, 1, 5))
	assert.True(t, Between("b", "a", "c"))

	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, -1, Clamp(-7, -1, 1))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, int8(math.MinInt8), Abs(int8(math.MinInt8)))
}

func TestTimes(t *testing.T) {
	var got []int
	Times(3, func(i int) { got = append(got, i) })
	assert.Equal(t, []int{0, 1, 2}, got)
	Times(-1, func(int) { t.Fatal("called for negative count") })
}

func TestPercentOf(t *testing.T) {
	p, err := PercentOf(25, 200)
	require.NoError(t, err)
	assert.Equal(t, 12.5, p)

	_, err = PercentOf(1.0, 0.0)
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))
}

func TestByteSizes(t *testing.T) {
	assert.Equal(t, int64(2048), Kilobytes(2))
	assert.Equal(t, int64(3)<<20, Megabytes(uint16(3)))
	assert.Equal(t, int64(1)<<30, Gigabytes(1))
	assert.Equal(t, int64(1)<<40, Terabytes(1))

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KB"},
		{Megabytes(5), "5.0 MB"},
		{Gigabytes(1) + Megabytes(512), "1.5 GB"},
		{-2048, "-2.0 KB"},
		{math.MinInt64, "-8.0 EB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in), "FormatBytes(%d)", tt.in)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 101: "101st", 111: "111th", 0: "0th", -1: "-1st",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestRound(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name   string
		value  string
		places int32
		mode   RoundingMode
		want   string
	}{
		{"half up tie", "2.345", 2, HalfUp, "2.35"},
		{"half up negative tie", "-2.345", 2, HalfUp, "-2.35"},
		{"half even tie down", "2.345", 2, HalfEven, "2.34"},
		{"half even tie up", "2.355", 2, HalfEven, "2.36"},
		{"down", "2.349", 2, Down, "2.34"},
		{"down negative", "-2.349", 2, Down, "-2.34"},
		{"up", "2.341", 2, Up, "2.35"},
		{"up negative", "-2.341", 2, Up, "-2.35"},
		{"tens", "1234", -1, HalfUp, "1230"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(d(tt.value), tt.places, tt.mode)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}

	_, err := Round(d("1"), 0, RoundingMode(42))
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))
	assert.Equal(t, "half-even", HalfEven.String())
}

func TestDecimalArithmetic(t *testing.T) {
	d := decimal.RequireFromString

	q, err := SafeDivide(d("10"), d("4"))
	require.NoError(t, err)
	assert.True(t, d("2.5").Equal(q))

	_, err = SafeDivide(d("1"), decimal.Zero)
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))

	assert.True(t, SumDecimals().IsZero())
	assert.True(t, d("0.3").Equal(SumDecimals(d("0.1"), d("0.2"))))

	avg, err := AverageDecimals(d("1"), d("2"))
	require.NoError(t, err)
	assert.True(t, d("1.5").Equal(avg))
	_, err = AverageDecimals()
	assert.Error(t, err)

	assert.True(t, d("30").Equal(Percentage(d("200"), d("15"))))
	assert.True(t, d("170").Equal(ApplyDiscount(d("200"), d("15"))))
	assert.True(t, d("119").Equal(GrossFromNet(d("100"), d("19"))))

	net, err := NetFromGross(d("119"), d("19"))
	require.NoError(t, err)
	assert.True(t, d("100").Equal(net))
}
