// File: doc.go
// Title: File Utilities Package Documentation
// Description: Package filex provides file checks, text reading and writing,
//              atomic replacement, copy and move helpers and concurrent batch
//              operations with combined error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-09
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Atomic writes via renameio, batch operations

// Package filex wraps common file system tasks.
//
// Writes that replace a file go through a temporary file in the target
// directory followed by a rename, so readers never observe a partial file:
//
//	err := filex.WriteAtomic("state.json", data, filex.DefaultFileMode)
//	err = filex.Copy("in.csv", "backup/in.csv")
//
// Batch operations process their inputs on a bounded worker group and keep
// going after individual failures. The returned error is nil on full success
// and otherwise an *exterr.Combined listing one error per failed item in
// input order:
//
//	err := filex.DeleteFiles(ctx, paths, filex.BatchOptions{Concurrency: 8})
//	var combined *exterr.Combined
//	if errors.As(err, &combined) {
//		for _, e := range combined.Errors() {
//			fmt.Println(e)
//		}
//	}
//
// Errors carry codes from the core error package: CodeNotFound for missing
// paths, CodePermissionDenied, CodeAlreadyExists when a target exists and
// overwriting was not requested, and CodeIOFailed otherwise.
package filex
