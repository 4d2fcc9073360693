// File: files.go
// Title: Batch File Commands
// Description: The files rm, cp and mv commands running filex batch
//              operations with the configured concurrency.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/utils/filex"
)

type batchFlags struct {
	concurrency int
	overwrite   bool
}

// options merges the flags over the configured batch options
func (f batchFlags) options(opts *options) filex.BatchOptions {
	b := opts.settings.BatchOptions(opts.logger)
	if f.concurrency > 0 {
		b.Concurrency = f.concurrency
	}
	b.Overwrite = f.overwrite
	return b
}

func newFilesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Delete, copy or move many files at once",
		Long: `Runs file operations on many paths in parallel. Every path is tried;
failures are reported together at the end. The number of parallel workers
comes from files.concurrency in the configuration or --concurrency.`,
	}
	cmd.AddCommand(
		newFilesRmCmd(opts),
		newFilesTransferCmd(opts, "cp", "Copy files into a directory", "copied", filex.CopyFiles),
		newFilesTransferCmd(opts, "mv", "Move files into a directory", "moved", filex.MoveFiles),
	)
	return cmd
}

func newFilesRmCmd(opts *options) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "rm <path...>",
		Short: "Delete files; missing paths are ignored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filex.DeleteFiles(cmdContext(cmd), args, flags.options(opts)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d files\n", len(args))
			return nil
		},
	}
	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "j", 0, "parallel workers (default from config)")
	return cmd
}

type transferFunc func(ctx context.Context, srcs []string, dstDir string, opts filex.BatchOptions) error

func newFilesTransferCmd(opts *options, use, short, verb string, transfer transferFunc) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   use + " <dst-dir> <src...>",
		Short: short,
		Long: short + `. Each source keeps its base name; the target directory is
created when missing. Existing targets are kept unless --overwrite is set.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, srcs := args[0], args[1:]
			if err := transfer(cmdContext(cmd), srcs, dst, flags.options(opts)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d files to %s\n", verb, len(srcs), dst)
			return nil
		},
	}
	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "j", 0, "parallel workers (default from config)")
	cmd.Flags().BoolVarP(&flags.overwrite, "overwrite", "f", false, "replace existing targets")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
