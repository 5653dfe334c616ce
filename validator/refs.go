package validator

import (
	"fmt"
	"iter"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/pathutil"
	"github.com/erraggy/oascheck/oaserrors"
)

// Ref is a distinct $ref value and where it was first seen.
type Ref struct {
	// Value is the $ref string as written
	Value string
	// Path is the structural path of the mapping holding the $ref
	Path string
	// Pos is the position of the $ref value
	Pos document.Position
}

// Internal reports whether the ref points into the same document.
func (r Ref) Internal() bool {
	return pathutil.IsLocalRef(r.Value)
}

// RefSet is a deduplicated set of $ref values in first-seen order.
// The zero value is empty and ready to use; a nil *RefSet is empty.
type RefSet struct {
	refs  []Ref
	index map[string]int
}

func (s *RefSet) add(ref Ref) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, seen := s.index[ref.Value]; seen {
		return
	}
	s.index[ref.Value] = len(s.refs)
	s.refs = append(s.refs, ref)
}

// Contains reports whether value is in the set.
func (s *RefSet) Contains(value string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[value]
	return ok
}

// Lookup returns the first occurrence of value.
func (s *RefSet) Lookup(value string) (Ref, bool) {
	if s == nil {
		return Ref{}, false
	}
	i, ok := s.index[value]
	if !ok {
		return Ref{}, false
	}
	return s.refs[i], true
}

// Len returns the number of distinct refs.
func (s *RefSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.refs)
}

// Values returns the ref strings in first-seen order.
func (s *RefSet) Values() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.refs))
	for i, r := range s.refs {
		out[i] = r.Value
	}
	return out
}

// All iterates the refs in first-seen order.
func (s *RefSet) All() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		if s == nil {
			return
		}
		for _, r := range s.refs {
			if !yield(r) {
				return
			}
		}
	}
}

// ExtractRefs collects every string value stored under a "$ref" key anywhere
// in the tree. A "$ref" whose value is not a string is descended like any
// other entry. The tree is visited once.
func ExtractRefs(n document.Node) *RefSet {
	s := &RefSet{}
	path := pathutil.Acquire()
	defer pathutil.Release(path)
	s.collect(n, path)
	return s
}

func (s *RefSet) collect(n document.Node, path *pathutil.PathBuilder) {
	document.Switch(n,
		func(m *document.Mapping) {
			for key, value := range m.All() {
				if key == "$ref" {
					if ref, ok := document.StringValue(value); ok {
						s.add(Ref{Value: ref, Path: path.String(), Pos: value.Pos()})
						continue
					}
				}
				path.PushKey(key)
				s.collect(value, path)
				path.Pop()
			}
		},
		func(seq *document.Sequence) {
			for i, item := range seq.All() {
				path.PushIndex(i)
				s.collect(item, path)
				path.Pop()
			}
		},
		nil,
	)
}

// Resolve walks an internal ref from root and returns the node it names.
// Each decoded segment is a mapping key or a sequence index. The first
// segment that cannot be followed is reported in a *oaserrors.ReferenceError.
//
// Segments are decoded as JSON Pointer (RFC 6901) tokens rather than matched
// literally: "~1" becomes '/' and "~0" becomes '~'. A key that literally
// contains "~1" is therefore addressed as "~01", and ReferenceError.Segment
// holds the decoded text.
func Resolve(root *document.Mapping, ref string) (document.Node, error) {
	segments, ok := pathutil.PointerSegments(ref)
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, IsExternal: true}
	}

	var cur document.Node = root
	for i, seg := range segments {
		next, ok := document.Child(cur, seg)
		if !ok {
			return nil, &oaserrors.ReferenceError{Ref: ref, Segment: seg, SegmentIndex: i}
		}
		cur = next
	}
	return cur, nil
}

// checkReferences reports external refs as warnings and unresolvable internal
// refs as errors. Each distinct ref is reported once, at its first occurrence.
func checkReferences(root *document.Mapping, refs *RefSet) []Finding {
	var findings []Finding
	for ref := range refs.All() {
		if !ref.Internal() {
			findings = append(findings, refFinding(ref, SeverityWarning, KindExternalReference,
				fmt.Sprintf("external reference %q cannot be checked", ref.Value)))
			continue
		}
		if _, err := Resolve(root, ref.Value); err != nil {
			findings = append(findings, refFinding(ref, SeverityError, KindUnresolvedReference, err.Error()))
		}
	}
	return findings
}

func refFinding(ref Ref, sev Severity, kind Kind, msg string) Finding {
	return Finding{
		Path:     ref.Path,
		Message:  msg,
		Severity: sev,
		Kind:     kind,
		Field:    "$ref",
		Value:    ref.Value,
		Line:     ref.Pos.Line,
		Column:   ref.Pos.Column,
	}
}
