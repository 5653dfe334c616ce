package mcpserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/oaserrors"
	"github.com/erraggy/oascheck/validator"
)

type validateInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OpenAPI document to validate"`
	Strict     *bool     `json:"strict,omitempty"      jsonschema:"Make warnings fail the document"`
	NoWarnings *bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Passed       bool            `json:"passed"`
	Version      string          `json:"version,omitempty"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	v := validator.New()
	v.StrictMode = strict
	v.IncludeWarnings = !noWarnings
	v.VersionPrefix = cfg.ValidateVersionPrefix
	v.Logger = validator.NewSlogAdapter(slog.Default())

	var result *validator.ValidationResult
	doc, err := input.Spec.resolve()
	switch {
	case err == nil:
		result = v.ValidateDocument(doc)
	case errors.Is(err, oaserrors.ErrParse):
		// A document that does not load is a finding, not a tool failure.
		result = loadFailure(v, input.Spec)
	default:
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		Passed:       result.Passed(strict),
		Version:      result.Version,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Errors:       toIssues(paginate(result.Errors, input.Offset, input.Limit)),
		Warnings:     toIssues(paginate(result.Warnings, input.Offset, input.Limit)),
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}

func loadFailure(v *validator.Validator, s specInput) *validator.ValidationResult {
	if s.File != "" {
		return v.Validate(s.File)
	}
	return v.ValidateBytes([]byte(s.Content), document.FormatUnknown)
}

func toIssues(findings []validator.Finding) []validateIssue {
	out := makeSlice[validateIssue](len(findings))
	for _, f := range findings {
		out = append(out, validateIssue{
			Path:    f.Path,
			Message: f.Message,
			Kind:    string(f.Kind),
			Field:   f.Field,
			Line:    f.Line,
			Column:  f.Column,
		})
	}
	return out
}
