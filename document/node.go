package document

import (
	"iter"
	"slices"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindMapping is an ordered set of unique string keys to nodes.
	KindMapping Kind = iota + 1
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindScalar is a string, number, boolean or null.
	KindScalar
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Position is a 1-based location in the source text.
// A zero Line means the loader did not record a position (JSON input).
type Position struct {
	Line   int
	Column int
}

// IsKnown returns true if this position has line information.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

// Node is a value in the document tree.
// The set of implementations is closed: *Mapping, *Sequence and *Scalar.
type Node interface {
	// Kind returns the node variant.
	Kind() Kind
	// Pos returns where the node starts in the source, if known.
	Pos() Position

	sealed()
}

// Mapping is an ordered collection of unique keys.
type Mapping struct {
	pos    Position
	keys   []string
	values map[string]Node
}

// NewMapping creates an empty mapping at pos.
func NewMapping(pos Position) *Mapping {
	return &Mapping{pos: pos, values: make(map[string]Node)}
}

func (*Mapping) sealed() {}

// Kind implements Node.
func (*Mapping) Kind() Kind { return KindMapping }

// Pos implements Node.
func (m *Mapping) Pos() Position { return m.pos }

// Set adds key with value. Setting an existing key replaces its value but
// keeps the key's original position in the iteration order.
func (m *Mapping) Set(key string, value Node) *Mapping {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.values[key]
	return n, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// All iterates over entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	pos   Position
	items []Node
}

// NewSequence creates a sequence at pos holding items.
func NewSequence(pos Position, items ...Node) *Sequence {
	return &Sequence{pos: pos, items: items}
}

func (*Sequence) sealed() {}

// Kind implements Node.
func (*Sequence) Kind() Kind { return KindSequence }

// Pos implements Node.
func (s *Sequence) Pos() Position { return s.pos }

// Append adds n to the end of the sequence.
func (s *Sequence) Append(n Node) *Sequence {
	s.items = append(s.items, n)
	return s
}

// Index returns the element at i.
func (s *Sequence) Index(i int) (Node, bool) {
	if s == nil || i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All iterates over elements with their index.
func (s *Sequence) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if s == nil {
			return
		}
		for i, n := range s.items {
			if !yield(i, n) {
				return
			}
		}
	}
}

// ScalarType is the resolved type of a scalar.
type ScalarType int

const (
	// ScalarString is a string value.
	ScalarString ScalarType = iota
	// ScalarNumber is an integer or floating point number.
	ScalarNumber
	// ScalarBool is true or false.
	ScalarBool
	// ScalarNull is null (or YAML ~ / empty value).
	ScalarNull
)

// String returns the lowercase name of the scalar type.
func (t ScalarType) String() string {
	switch t {
	case ScalarString:
		return "string"
	case ScalarNumber:
		return "number"
	case ScalarBool:
		return "bool"
	case ScalarNull:
		return "null"
	default:
		return "unknown"
	}
}

// Scalar is a leaf value. It keeps the literal source text, so numbers are
// never rounded through float64.
type Scalar struct {
	pos   Position
	typ   ScalarType
	value string
}

// NewScalar creates a scalar of type typ with literal text value.
func NewScalar(pos Position, typ ScalarType, value string) *Scalar {
	return &Scalar{pos: pos, typ: typ, value: value}
}

// String creates a string scalar without position information.
func String(value string) *Scalar {
	return NewScalar(Position{}, ScalarString, value)
}

func (*Scalar) sealed() {}

// Kind implements Node.
func (*Scalar) Kind() Kind { return KindScalar }

// Pos implements Node.
func (s *Scalar) Pos() Position { return s.pos }

// Type returns the resolved scalar type.
func (s *Scalar) Type() ScalarType { return s.typ }

// Value returns the literal text of the scalar.
func (s *Scalar) Value() string { return s.value }

// IsString reports whether the scalar is a string.
func (s *Scalar) IsString() bool { return s.typ == ScalarString }

// Compile-time checks that every variant implements Node.
var (
	_ Node = (*Mapping)(nil)
	_ Node = (*Sequence)(nil)
	_ Node = (*Scalar)(nil)
)
