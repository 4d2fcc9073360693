// File: doc.go
// Title: Package Documentation for timex
// Description: Overview of the time helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-07
// Modified: 2026-09-07
//
// Change History:
// - 2026-09-07 v0.1.0: Initial documentation

// Package timex provides calendar boundaries (StartOfDay, EndOfMonth, ...),
// relative times, duration constructors from integer counts and a duration
// parser that extends time.ParseDuration with day and week units:
//
//	d, _ := timex.ParseDuration("1w2d")   // 216h
//	d, _ = timex.ParseDuration("3 days")  // 72h
//	timex.FormatDuration(26*time.Hour + 3*time.Minute)
//	// "1 day, 2 hours and 3 minutes"
//
// Weeks start on Monday. A day is always 24 hours for duration purposes;
// calendar functions work on dates and honour the location of their input.
package timex
