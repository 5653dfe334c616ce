package issues

import (
	"testing"

	"github.com/erraggy/oascheck/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "components.schemas.Pet",
				Message:  "required property \"tag\" is not defined in properties",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "components.schemas.Pet", "required property"},
			notContains: []string{"line"},
		},
		{
			name: "warning severity with location",
			issue: Issue{
				Path:     "components.schemas.Dog",
				Message:  "schema is never referenced",
				Severity: severity.SeverityWarning,
				Line:     12,
				Column:   5,
			},
			contains: []string{"⚠", "components.schemas.Dog", "(line 12, col 5)"},
		},
		{
			name:     "empty path reports document",
			issue:    Issue{Message: "parse error", Severity: severity.SeverityError},
			contains: []string{"✗ document: parse error"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "x", Message: "m", Severity: severity.Severity(42)},
			contains: []string{"? x: m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestIssueLocation(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
		has   bool
	}{
		{"unknown falls back to path", Issue{Path: "paths"}, "paths", false},
		{"line and column", Issue{Path: "paths", Line: 3, Column: 1}, "3:1", true},
		{"with file", Issue{Path: "paths", Line: 3, Column: 1, File: "api.yaml"}, "api.yaml:3:1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.Location())
			assert.Equal(t, tt.has, tt.issue.HasLocation())
		})
	}
}

func TestIssueIsError(t *testing.T) {
	assert.True(t, Issue{Severity: severity.SeverityError}.IsError())
	assert.False(t, Issue{Severity: severity.SeverityWarning}.IsError())
}
