// Package errors provides the typed errors shared by the data and
// visualization packages. Every error carries a machine-readable type,
// a human-readable message, and an optional wrapped cause so callers
// can use errors.Is/errors.As across package boundaries.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies an error for programmatic handling.
type ErrorType string

const (
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypePlotting   ErrorType = "PLOTTING"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for common error types

// NewNotFoundError creates an error for a missing file or resource
func NewNotFoundError(message string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, message, cause)
}

// NewParsingError creates an error for malformed input data
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewValidationError creates an error for invalid arguments
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewStorageError creates an error for failed file writes
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewPlottingError creates an error for failed chart construction
func NewPlottingError(message string, cause error) *AppError {
	return NewAppError(ErrTypePlotting, message, cause)
}

// Domain-specific constructors used throughout the toolkit

// ColumnNotFound reports a column name that is not part of the dataframe schema.
func ColumnNotFound(column string) *AppError {
	return NewValidationError(fmt.Sprintf("column %q not found in dataframe", column), nil).
		WithContext("column", column)
}

// UnsupportedFormat reports a file extension the loader cannot handle.
func UnsupportedFormat(ext string) *AppError {
	return NewParsingError(fmt.Sprintf("unsupported file format %q (want .csv or .xlsx)", ext), nil).
		WithContext("extension", ext)
}

// UnknownAggregate reports an aggregation function outside the supported set.
func UnknownAggregate(fn string, valid []string) *AppError {
	return NewValidationError(
		fmt.Sprintf("unknown aggregate %q (must be one of %s)", fn, strings.Join(valid, ", ")), nil).
		WithContext("aggregate", fn)
}

// EmptyDataset reports an operation that requires at least one row of data.
func EmptyDataset(operation string) *AppError {
	return NewValidationError(fmt.Sprintf("%s requires a non-empty dataset", operation), nil).
		WithContext("operation", operation)
}
