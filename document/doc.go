// Package document holds the in-memory model of a parsed OpenAPI document.
//
// A document is a tree of [Node] values. Every node is exactly one of
// [*Mapping], [*Sequence] or [*Scalar]; the root is always a Mapping.
// Mappings preserve key order, which is the order findings are reported in.
//
// The model is read-only once built. Builders such as [Mapping.Set] exist for
// the loaders and for tests; validation code only reads.
//
// # Loading
//
//	doc, err := document.Load("openapi.yaml")
//	if err != nil {
//		// err is an *oaserrors.ParseError
//	}
//
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
// [Parse] with [FormatUnknown] sniffs the content instead, which is what the
// CLI does for stdin.
//
// # Traversal
//
// [Match] dispatches on the node variant and requires a handler for each one:
//
//	count := document.Match(node,
//		func(m *document.Mapping) int { return m.Len() },
//		func(s *document.Sequence) int { return s.Len() },
//		func(*document.Scalar) int { return 0 },
//	)
//
// [Child] looks up one JSON-pointer segment: a key for mappings, a decimal
// index for sequences.
package document
