// File: random.go
// Title: Secure Random String Generation
// Description: Generates random strings from a character set using
//              crypto/rand, for tokens, identifiers and salts.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial implementation with secure random generation
// - 2026-10-13 v0.2.0: Rejection sampling over a single read, rune charsets

package stringx

import (
	"crypto/rand"
	"io"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

// Character sets
const (
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits
	HexDigits        = "0123456789abcdef"
	URLSafe          = Alphanumeric + "-_"

	// HumanReadable omits characters that are easy to confuse (0/O, 1/l)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// randomSource is replaced in tests
var randomSource io.Reader = rand.Reader

// RandomString returns length runes drawn uniformly from charset. An empty
// charset means Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length < 0 {
		return "", errors.InvalidArgument(errors.ModuleStringx, "RandomString", "length", length, "must not be negative")
	}
	if length == 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}
	alphabet := []rune(charset)
	if len(alphabet) > 256 {
		return "", errors.InvalidArgument(errors.ModuleStringx, "RandomString", "charset", len(alphabet), "at most 256 characters")
	}

	// bytes at or above limit would bias the modulo and are discarded
	limit := 256 - 256%len(alphabet)
	result := make([]rune, 0, length)
	buf := make([]byte, length+length/4+8)
	for len(result) < length {
		if _, err := io.ReadFull(randomSource, buf); err != nil {
			return "", errors.OperationFailed(errors.ModuleStringx, "RandomString", exterr.CodeInternal, err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			result = append(result, alphabet[int(b)%len(alphabet)])
			if len(result) == length {
				break
			}
		}
	}
	return string(result), nil
}

// RandomAlphanumeric returns a random string of letters and digits
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex returns a random string of lowercase hex digits
func RandomHex(length int) (string, error) {
	return RandomString(length, HexDigits)
}

// RandomURLSafe returns a random string safe for URLs and file names
func RandomURLSafe(length int) (string, error) {
	return RandomString(length, URLSafe)
}

// RandomHumanReadable returns a random string without ambiguous characters
func RandomHumanReadable(length int) (string, error) {
	return RandomString(length, HumanReadable)
}
