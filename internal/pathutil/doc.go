// Package pathutil provides path building utilities for document traversal
// and helpers for $ref pointers.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings. This is
// particularly useful in recursive traversal where paths are built on each
// recursive call but only used when reporting a finding.
//
// # PathBuilder Usage
//
// Use [Acquire] to obtain a pooled PathBuilder, optionally seeded with the
// segments of the walk root, and [Release] to return it:
//
//	path := pathutil.Acquire("components", "schemas")
//	defer pathutil.Release(path)
//
//	path.Push("properties")
//	path.Push(propName)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
// Array indices are supported via [PathBuilder.PushIndex]:
//
//	path.Push("oneOf")
//	path.PushIndex(0)  // produces "oneOf[0]"
//
// # Pointers
//
// [PointerSegments] splits a local ref ("#/components/schemas/Pet") into its
// decoded segments, and [SchemaNameFromRef] extracts the schema name from refs
// into the schema-definitions container.
package pathutil
