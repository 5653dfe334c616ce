package validator

import (
	"fmt"
	"strings"

	"github.com/erraggy/oascheck/document"
)

// requiredTopLevelFields are the sections every document must declare, in
// reporting order.
var requiredTopLevelFields = []string{"openapi", "info", "paths"}

// checkStructure reports each missing top-level section and warns when the
// openapi version does not start with prefix.
func checkStructure(root *document.Mapping, prefix string) []Finding {
	var findings []Finding
	for _, field := range requiredTopLevelFields {
		if root.Has(field) {
			continue
		}
		findings = append(findings, Finding{
			Path:     field,
			Message:  fmt.Sprintf("missing required field %q", field),
			Severity: SeverityError,
			Kind:     KindStructural,
			Field:    field,
		})
	}

	n, ok := root.Get("openapi")
	if !ok {
		return findings
	}
	version, isScalar := document.Text(n)
	switch {
	case !isScalar:
		findings = append(findings, versionFinding(n, nil,
			fmt.Sprintf("openapi must be a version string, got a %s", n.Kind())))
	case !strings.HasPrefix(version, prefix):
		findings = append(findings, versionFinding(n, version,
			fmt.Sprintf("unsupported OpenAPI version %q (expected %sx)", version, prefix)))
	}
	return findings
}

func versionFinding(n document.Node, value any, msg string) Finding {
	pos := n.Pos()
	return Finding{
		Path:     "openapi",
		Message:  msg,
		Severity: SeverityWarning,
		Kind:     KindVersion,
		Field:    "openapi",
		Value:    value,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
