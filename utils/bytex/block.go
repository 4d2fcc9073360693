// File: block.go
// Title: Block Iteration
// Description: Splits a slice into fixed-size blocks lazily, optionally
//              zero-padding the final partial block.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bytex

import (
	"iter"

	"github.com/msto63/extkit/core/errors"
)

// BlockCopy returns an iterator over consecutive blocks of size elements of
// src. Each block is a fresh copy, so callers may keep or modify it. The last
// block holds the remainder; with pad it is extended with zero values to size.
// An empty src yields no blocks.
//
//	seq, _ := BlockCopy([]byte("abcde"), 2, true)
//	for block := range seq {
//		// "ab", "cd", "e\x00"
//	}
func BlockCopy[T any](src []T, size int, pad bool) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, errors.InvalidArgument(errors.ModuleBytex, "BlockCopy", "size", size, "must be positive")
	}

	return func(yield func([]T) bool) {
		for start := 0; start < len(src); start += size {
			end := min(start+size, len(src))
			n := end - start
			if pad {
				n = size
			}
			block := make([]T, n)
			copy(block, src[start:end])
			if !yield(block) {
				return
			}
		}
	}, nil
}

// Blocks collects the blocks of BlockCopy into a slice
func Blocks[T any](src []T, size int, pad bool) ([][]T, error) {
	seq, err := BlockCopy(src, size, pad)
	if err != nil {
		return nil, err
	}
	blocks := make([][]T, 0, (len(src)+size-1)/size)
	for block := range seq {
		blocks = append(blocks, block)
	}
	return blocks, nil
}
