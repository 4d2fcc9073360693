// File: doc.go
// Title: Package Documentation for streamx
// Description: Overview of the stream helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial documentation

// Package streamx complements io with whole-stream reads, a context-aware
// CopyTo, line iteration and text I/O in legacy encodings:
//
//	text, err := streamx.ReadAllText(f, "windows-1252")
//	err = streamx.WriteText(w, text, "utf-16le")
//
// Encoding names are resolved through the WHATWG index first and the IANA
// registry second.
package streamx
