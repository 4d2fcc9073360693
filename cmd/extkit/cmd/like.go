// File: like.go
// Title: Wildcard Commands
// Description: The like and find commands built on stringx wildcard
//              matching.
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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/mapx"
	"github.com/msto63/extkit/utils/streamx"
	"github.com/msto63/extkit/utils/stringx"
)

const findCacheSize = 4096

func (o *options) matcher(cmd *cobra.Command) func(s, pattern string) bool {
	fold := o.settings.WildcardFoldCase
	if f := cmd.Flags().Lookup("ignore-case"); f != nil && f.Changed {
		fold, _ = cmd.Flags().GetBool("ignore-case")
	}
	if fold {
		return stringx.IsLikeFold
	}
	return stringx.IsLike
}

func newLikeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like <value> <pattern>",
		Short: "Check a value against a wildcard pattern",
		Long: `Checks whether value matches pattern, where '*' stands for any run of
characters. Prints true or false.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := opts.matcher(cmd)(args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().BoolP("ignore-case", "i", false, "case-insensitive match")
	return cmd
}

func newFindCmd(opts *options) *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "find <pattern> [file...]",
		Short: "Print lines matching a wildcard pattern",
		Long: `Reads the given files, or stdin when none are given, and prints every
line that matches pattern as a whole. With several files each line is
prefixed with its file name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, files := args[0], args[1:]
			match := opts.matcher(cmd)
			out := cmd.OutOrStdout()

			// log files repeat lines a lot; each distinct line is matched once
			cacheOpts := opts.settings.CacheOptions(opts.logger)
			cacheOpts.MaxEntries = findCacheSize
			seen := mapx.NewCache[string, bool](cacheOpts)
			matches := func(line string) bool {
				ok, _ := seen.GetOrAdd(line, func(l string) (bool, error) {
					return match(l, pattern), nil
				})
				return ok
			}
			st := newStyles(out)

			total := 0
			scan := func(name string, r io.Reader) error {
				for line, err := range streamx.Lines(r) {
					if err != nil {
						return err
					}
					if !matches(line) {
						continue
					}
					total++
					if count {
						continue
					}
					if len(files) > 1 {
						fmt.Fprintf(out, "%s%s", st.label.Render(name), st.muted.Render(":"))
					}
					fmt.Fprintln(out, line)
				}
				return nil
			}

			if len(files) == 0 {
				if err := scan("-", cmd.InOrStdin()); err != nil {
					return err
				}
			}
			for _, name := range files {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				err = scan(name, f)
				f.Close()
				if err != nil {
					return err
				}
			}

			stats := seen.Stats()
			opts.logger.Debug("find finished", log.Fields{
				"pattern":    pattern,
				"files":      len(files),
				"matches":    total,
				"cache_hits": stats.Hits,
				"distinct":   stats.Misses,
			})
			if count {
				fmt.Fprintln(out, total)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("ignore-case", "i", false, "case-insensitive match")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print only the number of matching lines")
	return cmd
}
