// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities to
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with severity levels
// - 2026-10-11 v0.1.1: Severity mapping for helper library codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with a clear cause
	SeverityMedium

	// SeverityHigh indicates failures of the environment (I/O, crypto)
	SeverityHigh

	// SeverityCritical indicates internal invariants were broken
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIOFailed, CodePermissionDenied, CodeEncryptionFailed, CodeConfigError:
		return SeverityHigh
	case CodeInvalidArgument, CodeNilArgument, CodeOutOfRange, CodeInvalidFormat,
		CodeConversionFailed, CodePatternMismatch, CodeNotFound, CodeUnsupportedType:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
