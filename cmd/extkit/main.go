// File: main.go
// Title: extkit Command Line Entry Point
// Description: Runs the extkit command tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/extkit/cmd/extkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
