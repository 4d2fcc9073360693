// File: doc.go
// Title: Package Documentation for objx
// Description: Overview of the object helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial documentation

// Package objx serializes values to and from JSON (goccy/go-json), YAML
// (yaml.v3) and TOML (BurntSushi/toml), and queries them with JSONPath
// (PaesslerAG/jsonpath):
//
//	title, err := objx.QueryPath(order, "$.items[0].name")
//
// Query results follow JSON typing: numbers come back as float64, objects as
// map[string]any. QueryPathAs converts the result into a Go type.
package objx
