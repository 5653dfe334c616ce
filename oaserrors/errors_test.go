package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "parse error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("errors.Is matches ErrParse", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "api.json"})
		if !errors.Is(err, ErrParse) {
			t.Error("errors.Is should match ErrParse")
		}
		if errors.Is(err, ErrReference) {
			t.Error("errors.Is should not match ErrReference")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Unresolved segment", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Pet", Segment: "Pet", SegmentIndex: 2}
		want := `reference error: "#/components/schemas/Pet": segment "Pet" (position 2) not found`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("External reference", func(t *testing.T) {
		err := &ReferenceError{Ref: "other.yaml#/Pet", IsExternal: true, SegmentIndex: -1}
		want := `external reference: "other.yaml#/Pet"`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
		if !errors.Is(err, ErrExternalReference) {
			t.Error("external ref should match ErrExternalReference")
		}
		if !errors.Is(err, ErrReference) {
			t.Error("external ref should match ErrReference")
		}
	})

	t.Run("Internal reference is not external", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/a", Segment: "a", SegmentIndex: 0}
		if errors.Is(err, ErrExternalReference) {
			t.Error("internal ref should not match ErrExternalReference")
		}
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		var wrapped error = fmt.Errorf("resolve: %w", &ReferenceError{Ref: "#/x", Segment: "x"})
		var refErr *ReferenceError
		if !errors.As(wrapped, &refErr) {
			t.Fatal("errors.As should find ReferenceError")
		}
		if refErr.Segment != "x" {
			t.Errorf("unexpected segment %q", refErr.Segment)
		}
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "format", Value: "xml", Message: "unsupported"}
	want := "configuration error for format (value: xml): unsupported"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("errors.Is should match ErrConfig")
	}

	cause := errors.New("boom")
	withCause := &ConfigError{Cause: cause}
	if !errors.Is(withCause, cause) {
		t.Error("errors.Is should follow Cause")
	}
}
