package validator

import (
	"fmt"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/pathutil"
)

// checkRequiredProperties reports every required entry that is not a key of
// the same schema's properties, for each top-level schema and recursively
// for every property schema beneath it.
func checkRequiredProperties(root *document.Mapping) []Finding {
	schemas, ok := componentSchemas(root)
	if !ok {
		return nil
	}

	var findings []Finding
	for name, schema := range schemas.All() {
		if m, ok := document.AsMapping(schema); ok {
			findings = checkRequired(findings, m, pathutil.Join(schemasPath, name))
		}
	}
	return findings
}

func checkRequired(findings []Finding, schema *document.Mapping, path string) []Finding {
	props, hasProps := document.MappingAt(schema, "properties")

	if required, ok := document.SequenceAt(schema, "required"); ok && hasProps {
		for _, item := range required.All() {
			name, ok := document.StringValue(item)
			if !ok || props.Has(name) {
				continue
			}
			pos := item.Pos()
			findings = append(findings, Finding{
				Path:     path,
				Message:  fmt.Sprintf("required property %q is not defined in properties", name),
				Severity: SeverityError,
				Kind:     KindRequiredProperty,
				Field:    "required",
				Value:    name,
				Line:     pos.Line,
				Column:   pos.Column,
			})
		}
	}

	if !hasProps {
		return findings
	}
	propsPath := pathutil.Join(path, "properties")
	for name, value := range props.All() {
		if m, ok := document.AsMapping(value); ok {
			findings = checkRequired(findings, m, pathutil.Join(propsPath, name))
		}
	}
	return findings
}
