// File: crypto.go
// Title: Passphrase String Encryption
// Description: Encrypts strings with a key derived from a passphrase by scrypt
//              and sealed with XChaCha20-Poly1305. The output is a single
//              URL-safe base64 token carrying the KDF parameters, salt and
//              nonce, so it can be stored in configuration files or URLs.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Cost limits checked before key derivation

package stringx

import (
	"crypto/cipher"
	"encoding/base64"
	"io"
	"math/bits"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

const (
	cryptoVersion = 1
	saltSize      = 16

	// version | log2(N) | r | p | salt | nonce
	headerSize = 4 + saltSize + chacha20poly1305.NonceSizeX
)

// ScryptParams are the key derivation cost parameters. N must be a power of
// two; r and p must fit in a byte.
type ScryptParams struct {
	N int
	R int
	P int
}

// Upper bounds on the key derivation cost. Tokens carry their own
// parameters, so decryption refuses anything above these before deriving a
// key.
const (
	MaxScryptLog2N  = 20
	MaxScryptMemory = 256 << 20 // bytes, estimated as 128*N*r*p
)

// DefaultScryptParams are suitable for interactive use
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: 1 << 15, R: 8, P: 1}
}

func (p ScryptParams) validate(operation string) error {
	switch {
	case p.N <= 1 || p.N&(p.N-1) != 0 || p.N > 1<<MaxScryptLog2N:
		return errors.InvalidArgument(errors.ModuleStringx, operation, "N", p.N, "must be a power of two between 2 and 2^20")
	case p.R <= 0 || p.R > 255:
		return errors.InvalidArgument(errors.ModuleStringx, operation, "r", p.R, "must be between 1 and 255")
	case p.P <= 0 || p.P > 255:
		return errors.InvalidArgument(errors.ModuleStringx, operation, "p", p.P, "must be between 1 and 255")
	case uint64(128)*uint64(p.N)*uint64(p.R)*uint64(p.P) > MaxScryptMemory:
		return errors.InvalidArgument(errors.ModuleStringx, operation, "params", p, "cost exceeds 256 MiB")
	}
	return nil
}

var tokenEncoding = base64.RawURLEncoding

// EncryptString encrypts plain with passphrase using DefaultScryptParams
func EncryptString(plain, passphrase string) (string, error) {
	return EncryptStringWithParams(plain, passphrase, DefaultScryptParams())
}

// EncryptStringWithParams encrypts plain with passphrase. Every call uses a
// fresh salt and nonce, so encrypting the same input twice gives different
// tokens.
func EncryptStringWithParams(plain, passphrase string, params ScryptParams) (string, error) {
	if passphrase == "" {
		return "", errors.InvalidArgument(errors.ModuleStringx, "EncryptString", "passphrase", "", "must not be empty")
	}
	if err := params.validate("EncryptString"); err != nil {
		return "", err
	}

	header := make([]byte, headerSize, headerSize+len(plain)+chacha20poly1305.Overhead)
	header[0] = cryptoVersion
	header[1] = byte(bits.TrailingZeros(uint(params.N)))
	header[2] = byte(params.R)
	header[3] = byte(params.P)
	if _, err := io.ReadFull(randomSource, header[4:]); err != nil {
		return "", errors.OperationFailed(errors.ModuleStringx, "EncryptString", exterr.CodeEncryptionFailed, err)
	}
	salt := header[4 : 4+saltSize]
	nonce := header[4+saltSize:]

	aead, err := deriveAEAD(passphrase, salt, params)
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleStringx, "EncryptString", exterr.CodeEncryptionFailed, err)
	}

	// the header is authenticated so parameters cannot be swapped
	sealed := aead.Seal(header, nonce, []byte(plain), header)
	return tokenEncoding.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString. A wrong passphrase or a modified
// token yields an error with code DECRYPTION_FAILED; a token that is not
// base64 or too short to hold a header and tag yields INVALID_FORMAT.
// Header parameters above MaxScryptLog2N or MaxScryptMemory are rejected
// before any key is derived.
func DecryptString(token, passphrase string) (string, error) {
	raw, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return "", errors.InvalidFormat(errors.ModuleStringx, "DecryptString", token, "URL-safe base64 token", err)
	}
	if len(raw) < headerSize+chacha20poly1305.Overhead {
		return "", errors.InvalidFormat(errors.ModuleStringx, "DecryptString", token, "encrypted token", nil)
	}
	if raw[0] != cryptoVersion {
		return "", errors.StringxDecryptionFailed(
			errors.InvalidArgument(errors.ModuleStringx, "DecryptString", "version", int(raw[0]), "unsupported token version"))
	}
	if raw[1] > MaxScryptLog2N {
		return "", errors.StringxDecryptionFailed(
			errors.InvalidArgument(errors.ModuleStringx, "DecryptString", "log2N", int(raw[1]), "exceeds 20"))
	}

	params := ScryptParams{N: 1 << raw[1], R: int(raw[2]), P: int(raw[3])}
	if err := params.validate("DecryptString"); err != nil {
		return "", errors.StringxDecryptionFailed(err)
	}
	header := raw[:headerSize]
	salt := header[4 : 4+saltSize]
	nonce := header[4+saltSize:]

	aead, err := deriveAEAD(passphrase, salt, params)
	if err != nil {
		return "", errors.StringxDecryptionFailed(err)
	}
	plain, err := aead.Open(nil, nonce, raw[headerSize:], header)
	if err != nil {
		return "", errors.StringxDecryptionFailed(err)
	}
	return string(plain), nil
}

func deriveAEAD(passphrase string, salt []byte, params ScryptParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}
