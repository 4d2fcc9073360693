// File: streamx.go
// Title: Stream Utilities
// Description: Whole-stream reads, context-aware copying with pooled
//              buffers, line iteration and seeking helpers for io.Reader
//              and io.Writer values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package streamx

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"iter"
	"sync"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

// DefaultBufferSize is used by CopyTo when no size is given
const DefaultBufferSize = 32 * 1024

// MaxLineSize is the longest line ReadLines and Lines accept
const MaxLineSize = 1024 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultBufferSize)
		return &b
	},
}

// getBuffer returns a buffer of size bytes, pooled when size is the default
func getBuffer(size int) ([]byte, func()) {
	if size != DefaultBufferSize {
		return make([]byte, size), func() {}
	}
	bp := bufferPool.Get().(*[]byte)
	return *bp, func() { bufferPool.Put(bp) }
}

// ReadAllBytes reads r to EOF
func ReadAllBytes(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.NilArgument(errors.ModuleStreamx, "ReadAllBytes", "r")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleStreamx, "ReadAllBytes", exterr.CodeIOFailed, err)
	}
	return data, nil
}

// CopyTo copies src to dst until EOF or until ctx is done, checking the
// context between chunks. A bufferSize <= 0 selects DefaultBufferSize. It
// returns the number of bytes written.
func CopyTo(ctx context.Context, dst io.Writer, src io.Reader, bufferSize int) (int64, error) {
	if dst == nil {
		return 0, errors.NilArgument(errors.ModuleStreamx, "CopyTo", "dst")
	}
	if src == nil {
		return 0, errors.NilArgument(errors.ModuleStreamx, "CopyTo", "src")
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	buf, release := getBuffer(bufferSize)
	defer release()

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, errors.OperationFailed(errors.ModuleStreamx, "CopyTo", exterr.CodeIOFailed, werr)
			}
			if w != n {
				return written, errors.OperationFailed(errors.ModuleStreamx, "CopyTo", exterr.CodeIOFailed, io.ErrShortWrite)
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, errors.OperationFailed(errors.ModuleStreamx, "CopyTo", exterr.CodeIOFailed, rerr)
		}
	}
}

// Lines yields the lines of r without their terminators. Iteration stops
// after the first error, which is yielded with an empty line.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if r == nil {
			yield("", errors.NilArgument(errors.ModuleStreamx, "Lines", "r"))
			return
		}
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", errors.OperationFailed(errors.ModuleStreamx, "Lines", exterr.CodeIOFailed, err))
		}
	}
}

// ReadLines collects Lines into a slice
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	for line, err := range Lines(r) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ToReadSeeker returns r itself when it can seek and otherwise buffers it in
// memory
func ToReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := ReadAllBytes(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// SeekToBegin rewinds s to offset zero
func SeekToBegin(s io.Seeker) error {
	if s == nil {
		return errors.NilArgument(errors.ModuleStreamx, "SeekToBegin", "s")
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return errors.OperationFailed(errors.ModuleStreamx, "SeekToBegin", exterr.CodeIOFailed, err)
	}
	return nil
}
