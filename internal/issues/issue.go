// Package issues provides the finding type produced by validation passes.
package issues

import (
	"fmt"

	"github.com/erraggy/oascheck/internal/severity"
)

// Kind classifies a finding by the check that produced it.
type Kind string

const (
	// KindLoadFailure: the document could not be read or parsed.
	KindLoadFailure Kind = "load-failure"
	// KindStructural: a required top-level section is missing.
	KindStructural Kind = "structural"
	// KindUnresolvedReference: an internal pointer cannot be walked to completion.
	KindUnresolvedReference Kind = "unresolved-reference"
	// KindRequiredProperty: a required list names an undeclared property.
	KindRequiredProperty Kind = "required-property-mismatch"
	// KindDiscriminator: a union member lacks the discriminating property.
	KindDiscriminator Kind = "discriminator-mismatch"
	// KindVersion: the declared format version is not supported.
	KindVersion Kind = "version"
	// KindExternalReference: a pointer leaves the document.
	KindExternalReference Kind = "external-reference"
	// KindUnusedSchema: a schema definition is never referenced.
	KindUnusedSchema Kind = "unused-schema"
)

// Issue represents a single finding of a validation pass.
type Issue struct {
	// Path is the structural path to the problem (e.g., "components.schemas.Pet.properties.tag")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Kind names the check that produced the issue
	Kind Kind `json:"kind" yaml:"kind"`
	// Field is the specific field name that has the issue
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Value is the problematic value (optional)
	Value any `json:"value,omitempty" yaml:"value,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// File is the source file path (empty for in-memory documents)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses "✗" for errors and "⚠" for warnings.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}

	path := i.Path
	if path == "" {
		path = "document"
	}

	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, path, i.Line, i.Column, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the structural path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// IsError reports whether the issue has error severity.
func (i Issue) IsError() bool {
	return i.Severity == severity.SeverityError
}
