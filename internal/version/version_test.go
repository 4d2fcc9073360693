// File: version_test.go
// Title: Build Version Tests
// Description: Checks the version constants and package lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial tests

package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"Core", Core},
		{"Stringx", Stringx},
		{"Bytex", Bytex},
		{"Slicex", Slicex},
		{"Mapx", Mapx},
		{"Timex", Timex},
		{"Mathx", Mathx},
		{"Convx", Convx},
		{"Streamx", Streamx},
		{"Xmlx", Xmlx},
		{"Reflectx", Reflectx},
		{"Enumx", Enumx},
		{"Objx", Objx},
		{"Filex", Filex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestPackageVersion(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		expected string
	}{
		{"stringx", "stringx", Stringx},
		{"mixed case", "FileX", Filex},
		{"objx", "objx", Objx},
		{"unknown package", "unknown", Library},
		{"empty name", "", Library},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackageVersion(tt.pkg); got != tt.expected {
				t.Errorf("PackageVersion(%q) = %q, want %q", tt.pkg, got, tt.expected)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	info := Current()
	if info.Version != Library {
		t.Errorf("Version = %q, want %q", info.Version, Library)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.HasPrefix(info.String(), "extkit v"+Library) {
		t.Errorf("String() = %q", info.String())
	}
}
