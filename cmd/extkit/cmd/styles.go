// File: styles.go
// Title: Output Styles
// Description: lipgloss styles for command output. Styles are bound to the
//              writer they render for, so piped output stays plain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

type styles struct {
	label lipgloss.Style
	match lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		label: r.NewStyle().Bold(true).Foreground(colorPrimary),
		match: r.NewStyle().Foreground(colorSecondary),
		muted: r.NewStyle().Foreground(colorMuted),
		err:   r.NewStyle().Bold(true).Foreground(colorError),
	}
}
