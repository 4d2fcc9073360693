// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the fluent ErrorBuilder and the standardized error
//              constructors used across all extkit packages so that every error
//              carries its module and operation as details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-03 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-12 v0.2.0: Nil/invalid argument constructors, module helpers

package errors

import (
	"fmt"
	"reflect"

	exterr "github.com/msto63/extkit/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  exterr.Severity
	code      exterr.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: exterr.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity exterr.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code exterr.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *exterr.Error {
	if eb.code == "" {
		eb.code = exterr.CodeUnknown
	}
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *exterr.Error
	if eb.cause != nil {
		err = exterr.Wrap(eb.cause, eb.message)
	} else {
		err = exterr.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithOperation(op).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// InvalidArgument reports an argument whose value is not acceptable
func InvalidArgument(module, operation, argument string, value interface{}, reason string) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument %q for %s.%s: %s", argument, module, operation, reason).
		Code(exterr.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("reason", reason).
		Severity(exterr.SeverityLow).
		Build()
}

// NilArgument reports a required argument that was nil
func NilArgument(module, operation, argument string) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("argument %q for %s.%s must not be nil", argument, module, operation).
		Code(exterr.CodeNilArgument).
		Detail("argument", argument).
		Severity(exterr.SeverityLow).
		Build()
}

// InvalidFormat reports input that does not have the expected format
func InvalidFormat(module, operation string, input interface{}, expectedFormat string, cause error) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s: expected %s", module, operation, expectedFormat).
		Code(exterr.CodeInvalidFormat).
		Cause(cause).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(exterr.SeverityLow).
		Build()
}

// OutOfRange reports a numeric argument outside its accepted range
func OutOfRange(module, operation string, value, min, max interface{}) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Code(exterr.CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(exterr.SeverityLow).
		Build()
}

// NotFound reports a missing item
func NotFound(module, operation string, identifier interface{}) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(exterr.CodeNotFound).
		Detail("identifier", identifier).
		Severity(exterr.SeverityLow).
		Build()
}

// OperationFailed wraps a cause coming from the standard library or a dependency
func OperationFailed(module, operation string, code exterr.Code, cause error) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s failed", module, operation).
		Code(code).
		Cause(cause).
		Severity(exterr.GetSeverityFromCode(code)).
		Build()
}

// ConversionFailed reports a value that could not be converted to a target type
func ConversionFailed(module, operation string, input interface{}, target string, cause error) *exterr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot convert %q to %s", fmt.Sprint(input), target).
		Code(exterr.CodeConversionFailed).
		Cause(cause).
		Detail("input", input).
		Detail("target", target).
		Severity(exterr.SeverityLow).
		Build()
}

// =============================================================================
// ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from an extkit error
func ExtractDetails(err error) map[string]interface{} {
	if extErr, ok := err.(*exterr.Error); ok {
		return extErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	details := ExtractDetails(err)
	return details["module"] == module && details["operation"] == operation
}

// ValidateNotNil returns a NilArgument error when value is nil or a nil
// pointer, slice, map, func, chan or interface.
func ValidateNotNil(module, operation, argument string, value interface{}) error {
	if value == nil {
		return NilArgument(module, operation, argument)
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return NilArgument(module, operation, argument)
		}
	}
	return nil
}
