// File: standards.go
// Title: Error Standards for extkit
// Description: Module identifiers, sentinel errors and per-package convenience
//              constructors. Sentinels are matched by code so callers can write
//              errors.Is(err, errors.ErrNilArgument) regardless of message.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-03 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Sentinels and helpers for the extended package set

package errors

import (
	"fmt"

	exterr "github.com/msto63/extkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleBytex    = "bytex"
	ModuleSlicex   = "slicex"
	ModuleMapx     = "mapx"
	ModuleTimex    = "timex"
	ModuleMathx    = "mathx"
	ModuleConvx    = "convx"
	ModuleStreamx  = "streamx"
	ModuleXmlx     = "xmlx"
	ModuleReflectx = "reflectx"
	ModuleEnumx    = "enumx"
	ModuleObjx     = "objx"
	ModuleFilex    = "filex"
	ModuleConfig   = "config"
)

// Sentinels for errors.Is
var (
	ErrInvalidArgument  = exterr.Sentinel(exterr.CodeInvalidArgument, "invalid argument")
	ErrNilArgument      = exterr.Sentinel(exterr.CodeNilArgument, "nil argument")
	ErrOutOfRange       = exterr.Sentinel(exterr.CodeOutOfRange, "out of range")
	ErrInvalidFormat    = exterr.Sentinel(exterr.CodeInvalidFormat, "invalid format")
	ErrConversionFailed = exterr.Sentinel(exterr.CodeConversionFailed, "conversion failed")
	ErrPatternMismatch  = exterr.Sentinel(exterr.CodePatternMismatch, "pattern mismatch")
	ErrUnsupportedType  = exterr.Sentinel(exterr.CodeUnsupportedType, "unsupported type")
	ErrNotFound         = exterr.Sentinel(exterr.CodeNotFound, "not found")
	ErrDecryptionFailed = exterr.Sentinel(exterr.CodeDecryptionFailed, "decryption failed")
	ErrIOFailed         = exterr.Sentinel(exterr.CodeIOFailed, "i/o failed")
	ErrAggregate        = exterr.Sentinel(exterr.CodeAggregate, "aggregate")
)

// StringX convenience functions

func StringxPatternMismatch(operation, input, pattern string) *exterr.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("value %q does not match template %q", input, pattern).
		Code(exterr.CodePatternMismatch).
		Detail("input", input).
		Detail("pattern", pattern).
		Severity(exterr.SeverityLow).
		Build()
}

func StringxInvalidPattern(operation, pattern string, cause error) *exterr.Error {
	return InvalidFormat(ModuleStringx, operation, pattern, "valid pattern", cause)
}

func StringxDecryptionFailed(cause error) *exterr.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation("DecryptString").
		Message("wrong passphrase or corrupted ciphertext").
		Code(exterr.CodeDecryptionFailed).
		Cause(cause).
		Severity(exterr.SeverityMedium).
		Build()
}

// ByteX convenience functions

func BytexNilArgument(operation, argument string) *exterr.Error {
	return NilArgument(ModuleBytex, operation, argument)
}

// ConvX convenience functions

func ConvxConversionFailed(input interface{}, target string, cause error) *exterr.Error {
	return ConversionFailed(ModuleConvx, "To", input, target, cause)
}

func ConvxUnsupportedType(target string) *exterr.Error {
	return NewErrorBuilder(ModuleConvx).
		Operation("To").
		Messagef("conversion to %s is not supported", target).
		Code(exterr.CodeUnsupportedType).
		Detail("target", target).
		Severity(exterr.SeverityLow).
		Build()
}

// ReflectX convenience functions

func ReflectxPropertyNotFound(typeName, property string) *exterr.Error {
	return NewErrorBuilder(ModuleReflectx).
		Operation("property").
		Messagef("type %s has no property %q", typeName, property).
		Code(exterr.CodeNotFound).
		Detail("type", typeName).
		Detail("property", property).
		Severity(exterr.SeverityLow).
		Build()
}

func ReflectxMethodNotFound(typeName, method string) *exterr.Error {
	return NewErrorBuilder(ModuleReflectx).
		Operation("InvokeMethod").
		Messagef("type %s has no method %q", typeName, method).
		Code(exterr.CodeNotFound).
		Detail("type", typeName).
		Detail("method", method).
		Severity(exterr.SeverityLow).
		Build()
}

// EnumX convenience functions

func EnumxUnknownDisplay(display string) *exterr.Error {
	return NotFound(ModuleEnumx, "Parse", display)
}

// FileX convenience functions

func FilexNotFound(path string) *exterr.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("access").
		Messagef("file not found: %s", path).
		Code(exterr.CodeNotFound).
		Detail("path", path).
		Severity(exterr.SeverityMedium).
		Build()
}

func FilexOperationFailed(operation, path string, cause error) *exterr.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("%s %s", operation, path).
		Code(exterr.CodeIOFailed).
		Cause(cause).
		Detail("path", path).
		Severity(exterr.SeverityHigh).
		Build()
}

// StreamX convenience functions

func StreamxUnknownEncoding(name string, cause error) *exterr.Error {
	return NewErrorBuilder(ModuleStreamx).
		Operation("Encoding").
		Message(fmt.Sprintf("unknown text encoding %q", name)).
		Code(exterr.CodeNotFound).
		Cause(cause).
		Detail("encoding", name).
		Severity(exterr.SeverityLow).
		Build()
}
