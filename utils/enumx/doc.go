// File: doc.go
// Title: Package Documentation for enumx
// Description: Overview of the enum registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package enumx attaches display strings to enum-like constants through an
// explicit Registry filled at program start:
//
//	type Status int
//
//	var statuses = enumx.NewRegistry[Status]().
//		MustRegister(Open, "Open").
//		MustRegister(Closed, "Closed")
//
//	statuses.Display(Open)       // "Open"
//	s, err := statuses.Parse("closed")
//
// Parsing folds case with Unicode rules, so "STRASSE" finds "Straße".
package enumx
