// File: doc.go
// Title: Package Documentation for reflectx
// Description: Overview of the reflection helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package reflectx reads and writes properties by dotted path, invokes
// methods by name and fills struct fields from `default` tags.
//
// Types that implement PropertyAccessor are asked first, so virtual or
// computed properties work without reflection. Everything else goes through
// exported struct fields and string-keyed maps:
//
//	port, err := reflectx.GetPropertyValue(cfg, "Server.Port")
//	err = reflectx.SetPropertyValue(&cfg, "Server.Port", "9090")
//
// String values are converted to the field type with convx.
package reflectx
