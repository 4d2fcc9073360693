// File: template.go
// Title: Template Commands
// Description: The format and extract commands for positional {n}
//              templates.
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

	"github.com/msto63/extkit/utils/objx"
	"github.com/msto63/extkit/utils/slicex"
	"github.com/msto63/extkit/utils/stringx"
)

func newFormatCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format <template> [arg...]",
		Short: "Fill a positional template",
		Long: `Replaces every {n} in template with the n-th argument. Literal braces
are written as {{ and }}.`,
		Example: `  extkit format "{0} owes {1} EUR" Ann 42`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := stringx.ParseTemplate(args[0])
			if err != nil {
				return err
			}
			values := slicex.Map(args[1:], func(s string) interface{} { return s })
			s, err := tpl.Format(values...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newExtractCmd(_ *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "extract <template> <value>",
		Short: "Recover the arguments of a filled template",
		Long: `Matches value against template and prints the text captured by each
placeholder, in the order the placeholders occur. With --json the
arguments are printed as an object keyed by placeholder index; a
placeholder used more than once must capture the same text each time.`,
		Example: `  extkit extract "{0} owes {1} EUR" "Ann owes 42 EUR"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := stringx.ParseTemplate(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				m, err := tpl.ExtractMap(args[1])
				if err != nil {
					return err
				}
				s, err := objx.ToJSON(m)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
				return nil
			}

			values, err := tpl.Extract(args[1])
			if err != nil {
				return err
			}
			st := newStyles(out)
			for i, idx := range tpl.Placeholders() {
				label := st.label.Render(fmt.Sprintf("{%d}", idx))
				fmt.Fprintf(out, "%s %s\n", label, values[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print arguments as a JSON object")
	return cmd
}
