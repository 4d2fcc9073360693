// File: filex.go
// Title: File Utilities
// Description: Existence checks, whole-file reads and writes, atomic
//              replacement, copy and move with options, hashing and touch.
//              Errors are reported through the filex error constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-09
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation with core file utilities
// - 2026-10-17 v0.2.0: Atomic writes via renameio, context-aware copy,
//                      structured errors

package filex

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/mathx"
	"github.com/msto63/extkit/utils/streamx"
)

// Default permissions for files and directories created by filex
const (
	DefaultFileMode os.FileMode = 0o644
	DefaultDirMode  os.FileMode = 0o755
)

// CopyOptions controls Copy and Move
type CopyOptions struct {
	PreserveMode bool // Keep the source permission bits
	PreserveTime bool // Keep the source modification time
	CreateDirs   bool // Create missing parent directories of the target
	Overwrite    bool // Replace an existing target
	BufferSize   int  // Copy buffer size, 0 for streamx.DefaultBufferSize
}

// DefaultCopyOptions returns the options used when none are given
func DefaultCopyOptions() CopyOptions {
	return CopyOptions{
		PreserveMode: true,
		PreserveTime: true,
		CreateDirs:   true,
	}
}

// ===============================
// Checks
// ===============================

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// statErr maps an os error on path to a filex error
func statErr(operation, path string, err error) error {
	if os.IsNotExist(err) {
		return errors.FilexNotFound(path)
	}
	if os.IsPermission(err) {
		return errors.NewErrorBuilder(errors.ModuleFilex).
			Operation(operation).
			Messagef("permission denied: %s", path).
			Code(exterr.CodePermissionDenied).
			Cause(err).
			Detail("path", path).
			Build()
	}
	return errors.FilexOperationFailed(operation, path, err)
}

func alreadyExists(operation, path string) error {
	return errors.NewErrorBuilder(errors.ModuleFilex).
		Operation(operation).
		Messagef("%s already exists", path).
		Code(exterr.CodeAlreadyExists).
		Detail("path", path).
		Build()
}

// ===============================
// Read and write
// ===============================

// ReadString returns the content of path as a string
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", statErr("read", path, err)
	}
	return string(data), nil
}

// ReadText returns the content of path decoded from the named encoding
func ReadText(path, encodingName string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", statErr("read", path, err)
	}
	defer f.Close()
	return streamx.ReadAllText(f, encodingName)
}

// ReadLines returns the lines of path without their terminators
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, statErr("read", path, err)
	}
	defer f.Close()
	lines, err := streamx.ReadLines(f)
	if err != nil {
		return nil, errors.FilexOperationFailed("read", path, err)
	}
	return lines, nil
}

// WriteString writes content to path, truncating an existing file
func WriteString(path, content string, perm os.FileMode) error {
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return statErr("write", path, err)
	}
	return nil
}

// WriteAtomic replaces path with data so that readers see either the old or
// the new content, never a partial write
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return statErr("write", path, err)
	}
	return nil
}

// AppendLine appends line and a newline to path, creating it if needed
func AppendLine(path, line string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return statErr("append", path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return errors.FilexOperationFailed("append", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.FilexOperationFailed("append", path, err)
	}
	return nil
}

// ===============================
// Copy and move
// ===============================

// Copy copies the file src to dst. Without options DefaultCopyOptions apply.
func Copy(src, dst string, options ...CopyOptions) error {
	opts := DefaultCopyOptions()
	if len(options) > 0 {
		opts = options[0]
	}
	return CopyContext(context.Background(), src, dst, opts)
}

// CopyContext is Copy with cancellation. The target is written to a
// temporary file next to dst and renamed into place, so an interrupted copy
// leaves no partial target behind.
func CopyContext(ctx context.Context, src, dst string, opts CopyOptions) error {
	info, err := os.Stat(src)
	if err != nil {
		return statErr("copy", src, err)
	}
	if !info.Mode().IsRegular() {
		return errors.InvalidArgument(errors.ModuleFilex, "copy", "src", src, "must be a regular file")
	}
	if !opts.Overwrite && Exists(dst) {
		return alreadyExists("copy", dst)
	}
	if opts.CreateDirs {
		if err := EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return statErr("copy", src, err)
	}
	defer in.Close()

	perm := DefaultFileMode
	if opts.PreserveMode {
		perm = info.Mode().Perm()
	}
	out, err := renameio.NewPendingFile(dst, renameio.WithPermissions(perm))
	if err != nil {
		return statErr("copy", dst, err)
	}
	defer out.Cleanup()

	if _, err := streamx.CopyTo(ctx, out, in, opts.BufferSize); err != nil {
		return errors.FilexOperationFailed("copy", src, err)
	}
	if err := out.CloseAtomicallyReplace(); err != nil {
		return errors.FilexOperationFailed("copy", dst, err)
	}

	if opts.PreserveTime {
		if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return errors.FilexOperationFailed("copy", dst, err)
		}
	}
	return nil
}

// Move renames src to dst, falling back to copy and delete across file
// systems. An existing dst is only replaced when overwrite is set.
func Move(src, dst string, overwrite bool) error {
	return moveContext(context.Background(), src, dst, CopyOptions{
		PreserveMode: true,
		PreserveTime: true,
		CreateDirs:   true,
		Overwrite:    overwrite,
	})
}

func moveContext(ctx context.Context, src, dst string, opts CopyOptions) error {
	if _, err := os.Lstat(src); err != nil {
		return statErr("move", src, err)
	}
	if !opts.Overwrite && Exists(dst) {
		return alreadyExists("move", dst)
	}
	if opts.CreateDirs {
		if err := EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyContext(ctx, src, dst, opts); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return errors.FilexOperationFailed("move", src, err)
	}
	return nil
}

// EnsureDir creates path and any missing parents
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirMode); err != nil {
		return statErr("mkdir", path, err)
	}
	return nil
}

// ===============================
// Metadata
// ===============================

// Size returns the size of the file at path in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, statErr("stat", path, err)
	}
	return info.Size(), nil
}

// FormatSize renders a byte count with binary units, e.g. "1.5 MB"
func FormatSize(bytes int64) string {
	return mathx.FormatBytes(bytes)
}

// SHA256Hash returns the hex SHA-256 digest of the file content
func SHA256Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", statErr("hash", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.FilexOperationFailed("hash", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Touch creates path when missing and otherwise sets its access and
// modification time to now
func Touch(path string) error {
	if !Exists(path) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, DefaultFileMode)
		if err != nil {
			return statErr("touch", path, err)
		}
		return f.Close()
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return statErr("touch", path, err)
	}
	return nil
}
