// File: doc.go
// Title: Package Documentation for xmlx
// Description: Overview of the XML helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package xmlx wraps github.com/beevik/etree with lookups that report
// absence instead of returning nil, a validated path query and a flattening
// helper for configuration-style documents:
//
//	doc, _ := xmlx.Parse(`<cfg><port>8080</port></cfg>`)
//	port := xmlx.ChildValueOrDefault(doc.Root(), "port", "80")
package xmlx
