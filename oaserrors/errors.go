// Package oaserrors provides structured error types for oascheck.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a document that could not be
// loaded from a reference that could not be resolved or from a bad option.
//
// # Error Categories
//
//   - ParseError: the document could not be read or parsed
//   - ReferenceError: a $ref pointer could not be resolved inside the document
//   - ConfigError: invalid configuration or input options
package oaserrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a document could not be read or parsed.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrExternalReference indicates a reference that points outside the document.
	ErrExternalReference = errors.New("external reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to load a document.
// This covers read failures, YAML/JSON syntax errors, and documents whose
// root is not a mapping.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a $ref that could not be followed.
type ReferenceError struct {
	// Ref is the full reference string
	Ref string
	// Segment is the first path segment that could not be resolved (decoded form)
	Segment string
	// SegmentIndex is the 0-based position of Segment in the pointer, -1 if not applicable
	SegmentIndex int
	// IsExternal is true when the reference leaves the document
	IsExternal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsExternal {
		msg = "external reference"
	}
	if e.Ref != "" {
		msg += ": " + strconv.Quote(e.Ref)
	}
	if e.SegmentIndex >= 0 && !e.IsExternal {
		msg += fmt.Sprintf(": segment %q (position %d) not found", e.Segment, e.SegmentIndex)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and ErrExternalReference when IsExternal is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrExternalReference && e.IsExternal
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
