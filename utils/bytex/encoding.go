// File: encoding.go
// Title: Byte Encodings
// Description: Text encodings of byte slices: hexadecimal, base64 and the
//              Bitcoin-alphabet base58 used for compact identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bytex

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/msto63/extkit/core/errors"
)

// ToHex returns the lowercase hex encoding of b
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string; upper and lower case are accepted
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleBytex, "FromHex", s, "hexadecimal", err)
	}
	return b, nil
}

// ToBase64 returns the standard padded base64 encoding of b
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes standard or URL-safe base64, with or without padding
func FromBase64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	enc := base64.RawStdEncoding
	if strings.ContainsAny(s, "-_") {
		enc = base64.RawURLEncoding
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleBytex, "FromBase64", s, "base64", err)
	}
	return b, nil
}

// ToBase58 returns the base58 encoding of b
func ToBase58(b []byte) string {
	return base58.Encode(b)
}

// FromBase58 decodes a base58 string
func FromBase58(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleBytex, "FromBase58", s, "base58", err)
	}
	return b, nil
}

// ToUTF8String converts b to a string, replacing invalid UTF-8 sequences with
// U+FFFD
func ToUTF8String(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
