// File: random_test.go
// Title: Random String Tests
// Description: Tests for length, alphabet membership and error handling of
//              the random string generators.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial tests
// - 2026-10-13 v0.2.0: Failing reader and charset limits

package stringx

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	exterr "github.com/msto63/extkit/core/error"
)

func TestRandomGenerators(t *testing.T) {
	tests := []struct {
		name    string
		gen     func(int) (string, error)
		charset string
	}{
		{"alphanumeric", RandomAlphanumeric, Alphanumeric},
		{"hex", RandomHex, HexDigits},
		{"url safe", RandomURLSafe, URLSafe},
		{"human readable", RandomHumanReadable, HumanReadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.gen(64)
			if err != nil {
				t.Fatal(err)
			}
			if len(s) != 64 {
				t.Fatalf("length = %d", len(s))
			}
			for _, r := range s {
				if !strings.ContainsRune(tt.charset, r) {
					t.Errorf("rune %q not in charset", r)
				}
			}
		})
	}
}

func TestRandomStringUnicodeCharset(t *testing.T) {
	s, err := RandomString(20, "äöü")
	if err != nil {
		t.Fatal(err)
	}
	if n := utf8.RuneCountInString(s); n != 20 {
		t.Errorf("rune count = %d", n)
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	if s, err := RandomString(0, ""); err != nil || s != "" {
		t.Errorf("zero length = %q, %v", s, err)
	}
	if _, err := RandomString(-1, ""); !exterr.HasCode(err, exterr.CodeInvalidArgument) {
		t.Errorf("negative length error = %v", err)
	}
	if _, err := RandomString(4, strings.Repeat("ab", 200)); !exterr.HasCode(err, exterr.CodeInvalidArgument) {
		t.Errorf("oversized charset error = %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomStringReaderFailure(t *testing.T) {
	old := randomSource
	randomSource = failingReader{}
	defer func() { randomSource = old }()

	if _, err := RandomAlphanumeric(8); !exterr.HasCode(err, exterr.CodeInternal) {
		t.Errorf("error = %v", err)
	}
	if _, err := EncryptStringWithParams("x", "pw", fastParams); !exterr.HasCode(err, exterr.CodeEncryptionFailed) {
		t.Errorf("encrypt error = %v", err)
	}
}
