package validator

import (
	"errors"
	"io"
	"time"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/issues"
	"github.com/erraggy/oascheck/internal/severity"
	"github.com/erraggy/oascheck/oaserrors"
)

// Severity indicates the severity level of a finding
type Severity = severity.Severity

const (
	// SeverityError marks a defect that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning marks a probable mistake that does not invalidate the document
	SeverityWarning = severity.SeverityWarning
)

// Kind names the check that produced a finding
type Kind = issues.Kind

const (
	KindLoadFailure         = issues.KindLoadFailure
	KindStructural          = issues.KindStructural
	KindUnresolvedReference = issues.KindUnresolvedReference
	KindRequiredProperty    = issues.KindRequiredProperty
	KindDiscriminator       = issues.KindDiscriminator
	KindVersion             = issues.KindVersion
	KindExternalReference   = issues.KindExternalReference
	KindUnusedSchema        = issues.KindUnusedSchema
)

// DefaultVersionPrefix is the openapi version prefix accepted without a warning.
const DefaultVersionPrefix = "3."

const (
	defaultErrorCapacity   = 8
	defaultWarningCapacity = 8
)

// Finding is a single validation issue
type Finding = issues.Issue

// Stats counts what the validator saw in a document.
type Stats struct {
	// SchemaCount is the number of entries under components.schemas
	SchemaCount int `json:"schema_count" yaml:"schema_count"`
	// RefCount is the number of distinct $ref values
	RefCount int `json:"ref_count" yaml:"ref_count"`
	// InternalRefCount is the number of distinct refs starting with "#/"
	InternalRefCount int `json:"internal_ref_count" yaml:"internal_ref_count"`
	// ExternalRefCount is the number of distinct refs leaving the document
	ExternalRefCount int `json:"external_ref_count" yaml:"external_ref_count"`
}

// ValidationResult contains the findings for one document
type ValidationResult struct {
	// SourcePath is the file the document came from ("" for in-memory input)
	SourcePath string `json:"source_path" yaml:"source_path"`
	// Format is the syntax the document was parsed with
	Format document.Format `json:"format" yaml:"format"`
	// Version is the openapi field's text, if it is a scalar
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// StrictMode records whether the validator ran in strict mode
	StrictMode bool `json:"strict" yaml:"strict"`
	// Errors contains all error findings in discovery order
	Errors []Finding `json:"errors" yaml:"errors"`
	// Warnings contains all warning findings in discovery order
	Warnings []Finding `json:"warnings" yaml:"warnings"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warning_count" yaml:"warning_count"`
	// LoadTime is the time taken to read and parse the source
	LoadTime time.Duration `json:"load_time" yaml:"load_time"`
	// SourceSize is the size of the source data in bytes
	SourceSize int64 `json:"source_size" yaml:"source_size"`
	// Stats contains counts gathered during validation
	Stats Stats `json:"stats" yaml:"stats"`
}

// Passed reports whether the document passes under the given policy.
// Errors always fail; in strict mode warnings fail as well.
func (r *ValidationResult) Passed(strict bool) bool {
	if r.ErrorCount > 0 {
		return false
	}
	return !strict || r.WarningCount == 0
}

// LoadFailed reports whether the document could not be loaded.
func (r *ValidationResult) LoadFailed() bool {
	return len(r.Errors) == 1 && r.Errors[0].Kind == KindLoadFailure
}

// Validator handles OpenAPI document validation
type Validator struct {
	// IncludeWarnings determines whether warnings are kept in the result
	IncludeWarnings bool
	// StrictMode makes warnings fail the document in Passed callers that
	// follow the validator's setting
	StrictMode bool
	// VersionPrefix is the accepted prefix of the openapi field.
	// Empty means DefaultVersionPrefix.
	VersionPrefix string
	// Logger receives per-pass debug records. Nil means NopLogger.
	Logger Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		VersionPrefix:   DefaultVersionPrefix,
		Logger:          NopLogger{},
	}
}

// ValidateWithOptions validates a document using functional options.
// Exactly one input source (WithFilePath, WithDocument, WithBytes) must be given.
// The returned error is non-nil only for invalid options; document problems
// are reported as findings.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("openapi.yaml"),
//		validator.WithIncludeWarnings(false),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	v := cfg.newValidator()
	switch {
	case cfg.filePath != nil:
		return v.Validate(*cfg.filePath), nil
	case cfg.doc != nil:
		return v.ValidateDocument(cfg.doc), nil
	default:
		return v.ValidateBytes(cfg.data, cfg.format), nil
	}
}

// Validate loads and validates the file at path.
// The format is chosen by extension: .yaml and .yml are YAML, anything else JSON.
func (v *Validator) Validate(path string) *ValidationResult {
	doc, err := document.Load(path)
	if err != nil {
		return v.loadFailure(path, err)
	}
	return v.ValidateDocument(doc)
}

// ValidateBytes parses and validates data. FormatUnknown sniffs the content.
func (v *Validator) ValidateBytes(data []byte, format document.Format) *ValidationResult {
	doc, err := document.Parse(data, format)
	if err != nil {
		return v.loadFailure("", err)
	}
	return v.ValidateDocument(doc)
}

// ValidateReader reads all of r and validates it. FormatUnknown sniffs the content.
func (v *Validator) ValidateReader(r io.Reader, format document.Format) *ValidationResult {
	doc, err := document.LoadReader(r, format)
	if err != nil {
		return v.loadFailure("", err)
	}
	return v.ValidateDocument(doc)
}

// ValidateDocument runs every pass over an already loaded document.
func (v *Validator) ValidateDocument(doc *document.Document) *ValidationResult {
	result := &ValidationResult{
		SourcePath: doc.SourcePath,
		Format:     doc.Format,
		StrictMode: v.StrictMode,
		LoadTime:   doc.LoadTime,
		SourceSize: doc.SourceSize,
	}
	if doc.Root == nil {
		return v.finish(result, []Finding{{
			Message:  "document has no root mapping",
			Severity: SeverityError,
			Kind:     KindLoadFailure,
		}})
	}

	log := v.logger().With("path", doc.SourcePath)
	root := doc.Root
	if n, ok := root.Get("openapi"); ok {
		result.Version, _ = document.Text(n)
	}

	var refs *RefSet
	passes := []struct {
		name string
		run  func() []Finding
	}{
		{"structure", func() []Finding { return checkStructure(root, v.versionPrefix()) }},
		{"extract", func() []Finding { refs = ExtractRefs(root); return nil }},
		{"references", func() []Finding { return checkReferences(root, refs) }},
		{"discriminators", func() []Finding { return checkDiscriminators(root) }},
		{"required", func() []Finding { return checkRequiredProperties(root) }},
		{"unused", func() []Finding { return checkUnusedSchemas(root, refs) }},
	}

	var findings []Finding
	for _, p := range passes {
		start := time.Now()
		found := p.run()
		log.Debug("pass complete", "pass", p.name, "findings", len(found), "duration", time.Since(start))
		findings = append(findings, found...)
	}

	result.Stats = collectStats(root, refs)
	for i := range findings {
		if findings[i].Line > 0 {
			findings[i].File = doc.SourcePath
		}
	}
	v.finish(result, findings)
	log.Info("validated document",
		"format", doc.Format.String(),
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
	)
	return result
}

// loadFailure builds the single-finding result for an unloadable document.
func (v *Validator) loadFailure(path string, err error) *ValidationResult {
	v.logger().Error("failed to load document", "path", path, "error", err)

	finding := Finding{
		Message:  err.Error(),
		Severity: SeverityError,
		Kind:     KindLoadFailure,
		File:     path,
	}
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) {
		finding.Line = pe.Line
		finding.Column = pe.Column
	}
	result := &ValidationResult{
		SourcePath: path,
		StrictMode: v.StrictMode,
	}
	return v.finish(result, []Finding{finding})
}

// finish splits findings by severity and fills in the counts.
func (v *Validator) finish(result *ValidationResult, findings []Finding) *ValidationResult {
	result.Errors = make([]Finding, 0, defaultErrorCapacity)
	result.Warnings = make([]Finding, 0, defaultWarningCapacity)
	for _, f := range findings {
		if f.Severity == SeverityError {
			result.Errors = append(result.Errors, f)
		} else {
			result.Warnings = append(result.Warnings, f)
		}
	}

	if !v.IncludeWarnings {
		result.Warnings = result.Warnings[:0]
	}

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result
}

func (v *Validator) versionPrefix() string {
	if v.VersionPrefix == "" {
		return DefaultVersionPrefix
	}
	return v.VersionPrefix
}

func (v *Validator) logger() Logger {
	if v.Logger == nil {
		return NopLogger{}
	}
	return v.Logger
}

func collectStats(root *document.Mapping, refs *RefSet) Stats {
	var stats Stats
	if schemas, ok := componentSchemas(root); ok {
		stats.SchemaCount = schemas.Len()
	}
	for ref := range refs.All() {
		stats.RefCount++
		if ref.Internal() {
			stats.InternalRefCount++
		} else {
			stats.ExternalRefCount++
		}
	}
	return stats
}
