// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes shared by all extkit packages. Codes
//              classify failures independently of their message so callers can
//              branch on them with HasCode or errors.Is against a sentinel.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with core error codes
// - 2026-10-11 v0.2.0: Replaced service codes with helper library codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Argument validation
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNilArgument     Code = "NIL_ARGUMENT"
	CodeOutOfRange      Code = "OUT_OF_RANGE"

	// Parsing and conversion
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodePatternMismatch  Code = "PATTERN_MISMATCH"
	CodeUnsupportedType  Code = "UNSUPPORTED_TYPE"

	// Crypto
	CodeEncryptionFailed Code = "ENCRYPTION_FAILED"
	CodeDecryptionFailed Code = "DECRYPTION_FAILED"

	// I/O and file system
	CodeIOFailed         Code = "IO_FAILED"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Aggregates several independent failures
	CodeAggregate Code = "AGGREGATE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeNilArgument, CodeOutOfRange,
		CodeInvalidFormat, CodeConversionFailed, CodePatternMismatch, CodeUnsupportedType,
		CodeEncryptionFailed, CodeDecryptionFailed,
		CodeIOFailed, CodePermissionDenied, CodeAlreadyExists,
		CodeConfigError, CodeMissingConfig,
		CodeAggregate:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeNilArgument, CodeOutOfRange:
		return "argument"
	case CodeInvalidFormat, CodeConversionFailed, CodePatternMismatch, CodeUnsupportedType:
		return "conversion"
	case CodeEncryptionFailed, CodeDecryptionFailed:
		return "crypto"
	case CodeIOFailed, CodePermissionDenied, CodeAlreadyExists, CodeNotFound:
		return "io"
	case CodeConfigError, CodeMissingConfig:
		return "configuration"
	case CodeAggregate:
		return "aggregate"
	default:
		return "generic"
	}
}
