package pathutil

import "strings"

const (
	// LocalRefPrefix starts every pointer into the current document.
	LocalRefPrefix = "#/"

	// RefPrefixSchemas is the pointer prefix of the schema-definitions container.
	RefPrefixSchemas = "#/components/schemas/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeSegment(name)
}

// IsLocalRef reports whether ref points into the current document.
// Only refs starting with "#/" are local; everything else, including a bare
// "#", is treated as external.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, LocalRefPrefix)
}

// PointerSegments splits a local ref into its path segments, each decoded
// per RFC 6901 ("~1" to '/', then "~0" to '~'). The text after "#/" is split
// on every '/', so "#/" yields a single empty segment. Returns false if ref is
// not local.
func PointerSegments(ref string) ([]string, bool) {
	rest, ok := strings.CutPrefix(ref, LocalRefPrefix)
	if !ok {
		return nil, false
	}
	parts := strings.Split(rest, "/")
	for i, p := range parts {
		parts[i] = UnescapeSegment(p)
	}
	return parts, true
}

// SchemaNameFromRef returns the final segment of a ref under the schemas
// prefix. "#/components/schemas/Pet" yields "Pet";
// "#/components/schemas/Pet/properties/id" yields "id".
func SchemaNameFromRef(ref string) (string, bool) {
	rest, ok := strings.CutPrefix(ref, RefPrefixSchemas)
	if !ok || rest == "" {
		return "", false
	}
	name := rest[strings.LastIndexByte(rest, '/')+1:]
	if name == "" {
		return "", false
	}
	return UnescapeSegment(name), true
}

// UnescapeSegment decodes a JSON pointer segment ("~1" → "/", "~0" → "~").
func UnescapeSegment(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(s)
}

// EscapeSegment encodes a key for use as a JSON pointer segment.
func EscapeSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}
