// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helpers that extend the
//              standard strings package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial package documentation
// - 2026-10-13 v0.2.0: Wildcards, templates, regex cache and encryption

// Package stringx provides string helpers that extend the standard strings
// package. All helpers are Unicode-aware: lengths, offsets and padding count
// runes, not bytes.
//
// # Overview
//
// The package is organized into functional groups:
//
//   - Core operations: emptiness checks, rune-safe slicing, padding, Join (stringx.go)
//   - Wildcards: "*" pattern matching with IsLike and IsLikeFold (like.go)
//   - Templates: FormatWith and its inverse ExtractArguments (template.go)
//   - Regular expressions backed by a compiled-pattern cache (regex.go)
//   - Case conversion between naming conventions (case.go)
//   - Random strings from crypto/rand (random.go)
//   - Passphrase encryption of strings (crypto.go)
//   - GUID parsing and digests (guid.go, hash.go)
//
// # Wildcards
//
// IsLike treats '*' as "any run of characters, including none". There is no
// escape for a literal star and no single-character wildcard:
//
//	stringx.IsLike("invoice-2024-03.pdf", "invoice-*.pdf") // true
//	stringx.IsLike("abc", "abc")                           // true
//	stringx.IsLikeFold("README.md", "readme*")             // true
//
// # Templates
//
// A template contains placeholders "{0}", "{1}", ... referring to argument
// positions. FormatWith fills them in; ExtractArguments goes the other way
// and recovers the values from a formatted string:
//
//	s, _ := stringx.FormatWith("{0} owes {1} EUR", "Ann", 42)
//	args, _ := stringx.ExtractArguments(s, "{0} owes {1} EUR")
//	// args == []string{"Ann", "42"}
//
// Parsed templates and compiled regular expressions are kept in bounded
// mapx.Cache instances shared by all goroutines.
//
// # Encryption
//
// EncryptString derives a key from the passphrase with scrypt and seals the
// text with XChaCha20-Poly1305. The token is URL-safe base64 of
//
//	version | log2(N) | r | p | salt(16) | nonce(24) | ciphertext+tag
//
// DecryptString returns an error with code DECRYPTION_FAILED when the
// passphrase is wrong or the token was modified.
//
// # Errors
//
// Functions that can fail return *error.Error values built by the core/errors
// package; match them with errors.Is against the sentinels there, for example
// errors.ErrPatternMismatch.
package stringx
