// File: doc.go
// Title: Package Documentation for mathx
// Description: Overview of the numeric helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-08
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-08 v0.1.0: Initial documentation

// Package mathx holds small generic numeric helpers (IsPrime, Clamp,
// PercentOf, FormatBytes, Ordinal) and decimal arithmetic helpers built on
// github.com/shopspring/decimal.
//
// Decimal rounding is explicit about its mode:
//
//	v := decimal.RequireFromString("2.345")
//	r, _ := mathx.Round(v, 2, mathx.HalfEven) // 2.34
//	r, _ = mathx.Round(v, 2, mathx.HalfUp)    // 2.35
//
// Division never panics through SafeDivide; a zero divisor is reported as an
// invalid argument error.
package mathx
