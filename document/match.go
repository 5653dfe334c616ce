package document

import "strconv"

// Match calls the handler for n's variant and returns its result.
// A nil node yields the zero value of T.
func Match[T any](n Node, onMapping func(*Mapping) T, onSequence func(*Sequence) T, onScalar func(*Scalar) T) T {
	switch v := n.(type) {
	case *Mapping:
		return onMapping(v)
	case *Sequence:
		return onSequence(v)
	case *Scalar:
		return onScalar(v)
	}
	var zero T
	return zero
}

// AsMapping returns n as a mapping.
func AsMapping(n Node) (*Mapping, bool) {
	m, ok := n.(*Mapping)
	return m, ok && m != nil
}

// AsSequence returns n as a sequence.
func AsSequence(n Node) (*Sequence, bool) {
	s, ok := n.(*Sequence)
	return s, ok && s != nil
}

// AsScalar returns n as a scalar.
func AsScalar(n Node) (*Scalar, bool) {
	s, ok := n.(*Scalar)
	return s, ok && s != nil
}

// StringValue returns the value of a string scalar.
// It returns false for every other node, including non-string scalars.
func StringValue(n Node) (string, bool) {
	s, ok := AsScalar(n)
	if !ok || !s.IsString() {
		return "", false
	}
	return s.Value(), true
}

// Text returns the literal text of any scalar.
func Text(n Node) (string, bool) {
	s, ok := AsScalar(n)
	if !ok {
		return "", false
	}
	return s.Value(), true
}

// MappingAt returns the value under key in m if that value is a mapping.
func MappingAt(m *Mapping, key string) (*Mapping, bool) {
	n, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return AsMapping(n)
}

// SequenceAt returns the value under key in m if that value is a sequence.
func SequenceAt(m *Mapping, key string) (*Sequence, bool) {
	n, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return AsSequence(n)
}

// Child looks up a single pointer segment below n.
// Mappings are indexed by key and sequences by a non-negative decimal index
// without leading zeros. Scalars have no children.
func Child(n Node, segment string) (Node, bool) {
	return Match(n,
		func(m *Mapping) childResult {
			c, ok := m.Get(segment)
			return childResult{c, ok}
		},
		func(s *Sequence) childResult {
			i, ok := parseIndex(segment)
			if !ok {
				return childResult{}
			}
			c, ok := s.Index(i)
			return childResult{c, ok}
		},
		func(*Scalar) childResult { return childResult{} },
	).unpack()
}

type childResult struct {
	node Node
	ok   bool
}

func (r childResult) unpack() (Node, bool) { return r.node, r.ok }

func parseIndex(segment string) (int, bool) {
	if segment == "" || (len(segment) > 1 && segment[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Switch calls the handler for n's variant. Nil handlers are skipped, so a
// caller states explicitly which variants it ignores.
func Switch(n Node, onMapping func(*Mapping), onSequence func(*Sequence), onScalar func(*Scalar)) {
	switch v := n.(type) {
	case *Mapping:
		if onMapping != nil {
			onMapping(v)
		}
	case *Sequence:
		if onSequence != nil {
			onSequence(v)
		}
	case *Scalar:
		if onScalar != nil {
			onScalar(v)
		}
	}
}
