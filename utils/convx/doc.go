// File: doc.go
// Title: Package Documentation for convx
// Description: Overview of the conversion helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial documentation

// Package convx converts strings into typed values.
//
//	port, err := convx.To[int](os.Getenv("PORT"))
//	ttl := convx.ToOrDefault[time.Duration](raw, time.Hour)
//
// To reports a conversion error; ToOrDefault trades the error for a
// fallback. Durations accept day and week units via timex.ParseDuration and
// times are parsed with timex.Parse.
package convx
