// Package severity provides the severity levels of validation findings.
//
//   - SeverityError: the document is unusable for code generation
//   - SeverityWarning: advisory; only fails a run in strict mode
package severity

import "fmt"

// Severity indicates how serious a finding is.
type Severity int

const (
	// SeverityError indicates a defect that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates an advisory finding. Warnings never make a
	// document invalid on their own.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so reports carry the name
// rather than the number.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("severity: unknown level %q", text)
	}
	return nil
}
