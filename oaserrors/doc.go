// Package oaserrors provides structured error types for the oascheck library.
//
// Import path: github.com/erraggy/oascheck/oaserrors
//
// Document problems found by the validator are reported as findings, not
// errors. The types here describe the failures underneath those findings and
// the misuse of library entry points.
//
// # Error Types
//
//   - [ParseError]: a document could not be read or parsed
//   - [ReferenceError]: a $ref could not be resolved, or leaves the document
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrExternalReference]: Matches [ReferenceError] with IsExternal=true
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	doc, err := document.Load("api.yaml")
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // Handle parse error
//	}
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("%s failed at %q\n", refErr.Ref, refErr.Segment)
//	}
package oaserrors
