// File: version.go
// Title: Version Command
// Description: Prints build information.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Current()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return
			}
			st := newStyles(out)
			fmt.Fprintf(out, "extkit v%s\n", info.Version)
			fmt.Fprintf(out, "  %s %s\n", st.label.Render("Git Commit:"), info.GitCommit)
			fmt.Fprintf(out, "  %s %s\n", st.label.Render("Build Date:"), info.BuildDate)
			fmt.Fprintf(out, "  %s %s\n", st.label.Render("Go Version:"), info.GoVersion)
			fmt.Fprintf(out, "  %s %s\n", st.label.Render("OS/Arch:   "), info.Platform)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
