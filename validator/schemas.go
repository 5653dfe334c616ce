package validator

import "github.com/erraggy/oascheck/document"

const schemasPath = "components.schemas"

// componentSchemas returns the components.schemas mapping, if both levels
// are mappings.
func componentSchemas(root *document.Mapping) (*document.Mapping, bool) {
	components, ok := document.MappingAt(root, "components")
	if !ok {
		return nil, false
	}
	return document.MappingAt(components, "schemas")
}
