// File: batch.go
// Title: Batch File Operations
// Description: Delete, copy and move many files with bounded concurrency.
//              Every item is attempted; all failures are reported together
//              as one combined error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filex

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
)

// DefaultConcurrency is the number of parallel workers when none is set
const DefaultConcurrency = 4

// BatchOptions controls DeleteFiles, CopyFiles and MoveFiles
type BatchOptions struct {
	Concurrency int         // Parallel workers, 0 for DefaultConcurrency
	Overwrite   bool        // Replace existing targets when copying or moving
	Logger      *log.Logger // Receives one entry per failure and a summary
}

func (o BatchOptions) normalized() BatchOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	return o
}

// DeleteFiles removes every path. A path that is already gone counts as
// deleted. The result is nil when all deletions succeed and otherwise a
// *exterr.Combined holding one error per failed path, in input order.
func DeleteFiles(ctx context.Context, paths []string, opts BatchOptions) error {
	return runBatch(ctx, "delete files", paths, opts, func(_ context.Context, path string) error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return statErr("delete", path, err)
		}
		return nil
	})
}

// CopyFiles copies every source into dstDir, keeping base names. dstDir is
// created when missing. Failures are combined like in DeleteFiles.
func CopyFiles(ctx context.Context, srcs []string, dstDir string, opts BatchOptions) error {
	if err := EnsureDir(dstDir); err != nil {
		return exterr.Combine("copy files", err)
	}
	copyOpts := CopyOptions{PreserveMode: true, PreserveTime: true, Overwrite: opts.Overwrite}
	return runBatch(ctx, "copy files", srcs, opts, func(ctx context.Context, src string) error {
		return CopyContext(ctx, src, filepath.Join(dstDir, filepath.Base(src)), copyOpts)
	})
}

// MoveFiles moves every source into dstDir, keeping base names. Failures are
// combined like in DeleteFiles; sources that failed stay where they were.
func MoveFiles(ctx context.Context, srcs []string, dstDir string, opts BatchOptions) error {
	if err := EnsureDir(dstDir); err != nil {
		return exterr.Combine("move files", err)
	}
	moveOpts := CopyOptions{PreserveMode: true, PreserveTime: true, Overwrite: opts.Overwrite}
	return runBatch(ctx, "move files", srcs, opts, func(ctx context.Context, src string) error {
		return moveContext(ctx, src, filepath.Join(dstDir, filepath.Base(src)), moveOpts)
	})
}

// runBatch applies op to every item on a bounded worker group. Items not
// started before ctx is done fail with the context error.
func runBatch(ctx context.Context, name string, items []string, opts BatchOptions, op func(context.Context, string) error) error {
	opts = opts.normalized()
	logger := opts.Logger.WithField("operation", name)
	timer := logger.StartTimer(name)

	errs := make([]error, len(items))
	var g errgroup.Group
	g.SetLimit(opts.Concurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = exterr.Wrapf(err, "%s: %s", name, item)
				return nil
			}
			if err := op(ctx, item); err != nil {
				errs[i] = err
				logger.WarnWithErr("batch item failed", err, log.Fields{"item": item})
			}
			return nil
		})
	}
	_ = g.Wait()

	result := exterr.Combine(name, errs...)
	failed := 0
	if c, ok := result.(*exterr.Combined); ok {
		failed = c.Len()
	}
	timer.StopWithResult(failed == 0, log.Fields{"items": len(items), "failed": failed})
	return result
}
