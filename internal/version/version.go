// File: version.go
// Title: Build Version Information
// Description: Version constants of the extkit packages and the build
//              metadata injected by the linker for the command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Library is the release of the extkit packages
const Library = "0.2.0"

// Package versions. They move with Library unless a package is released on
// its own.
const (
	Core     = "0.2.0"
	Stringx  = "0.2.0"
	Bytex    = "0.2.0"
	Slicex   = "0.2.0"
	Mapx     = "0.2.0"
	Timex    = "0.2.0"
	Mathx    = "0.2.0"
	Convx    = "0.1.0"
	Streamx  = "0.1.0"
	Xmlx     = "0.1.0"
	Reflectx = "0.1.0"
	Enumx    = "0.1.0"
	Objx     = "0.1.0"
	Filex    = "0.2.0"
)

// Set at build time with -ldflags "-X github.com/msto63/extkit/internal/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// PackageVersion returns the version of the named package, or Library for
// unknown names
func PackageVersion(name string) string {
	switch strings.ToLower(name) {
	case "core":
		return Core
	case "stringx":
		return Stringx
	case "bytex":
		return Bytex
	case "slicex":
		return Slicex
	case "mapx":
		return Mapx
	case "timex":
		return Timex
	case "mathx":
		return Mathx
	case "convx":
		return Convx
	case "streamx":
		return Streamx
	case "xmlx":
		return Xmlx
	case "reflectx":
		return Reflectx
	case "enumx":
		return Enumx
	case "objx":
		return Objx
	case "filex":
		return Filex
	default:
		return Library
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the build information of the running binary
func Current() Info {
	return Info{
		Version:   Library,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("extkit v%s (%s, %s, %s)", i.Version, i.GitCommit, i.GoVersion, i.Platform)
}
