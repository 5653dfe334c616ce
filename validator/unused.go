package validator

import (
	"fmt"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/pathutil"
)

// checkUnusedSchemas warns about each schema under components.schemas that
// no ref names. References from anywhere count, including from schemas that
// are themselves unused.
func checkUnusedSchemas(root *document.Mapping, refs *RefSet) []Finding {
	schemas, ok := componentSchemas(root)
	if !ok {
		return nil
	}

	referenced := make(map[string]struct{}, refs.Len())
	for ref := range refs.All() {
		if name, ok := pathutil.SchemaNameFromRef(ref.Value); ok {
			referenced[name] = struct{}{}
		}
	}

	var findings []Finding
	for name, schema := range schemas.All() {
		if _, ok := referenced[name]; ok {
			continue
		}
		pos := schema.Pos()
		findings = append(findings, Finding{
			Path:     pathutil.Join(schemasPath, name),
			Message:  fmt.Sprintf("schema %q is never referenced", name),
			Severity: SeverityWarning,
			Kind:     KindUnusedSchema,
			Field:    name,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
	return findings
}
