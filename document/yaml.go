package document

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"
)

var (
	errEmptyDocument   = errors.New("document is empty")
	errRootNotMapping  = errors.New("document root must be a mapping")
	errAliasCycle      = errors.New("alias refers to one of its own ancestors")
	errNonScalarMapKey = errors.New("mapping keys must be scalars")
	errTooManyNodes    = errors.New("alias expansion exceeds node limit")
)

// Alias expansion may build at most nodesPerInputByte nodes for each byte of
// input, and never fewer than minNodeLimit in total.
const (
	nodesPerInputByte = 64
	minNodeLimit      = 1 << 14
)

// ParseYAML parses YAML (or JSON, which YAML accepts) into a document tree.
// Anchors and aliases are expanded and merge keys ("<<") are applied.
func ParseYAML(data []byte) (*Mapping, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, errEmptyDocument
	}

	b := &yamlBuilder{
		active: make(map[*yaml.Node]bool),
		limit:  max(len(data)*nodesPerInputByte, minNodeLimit),
	}
	node, err := b.build(&root)
	if err != nil {
		return nil, err
	}
	m, ok := AsMapping(node)
	if !ok {
		return nil, &positionedError{pos: node.Pos(), err: errRootNotMapping}
	}
	return m, nil
}

// positionedError attaches a source position to a structural load failure.
type positionedError struct {
	pos Position
	err error
}

func (e *positionedError) Error() string {
	if e.pos.IsKnown() {
		return fmt.Sprintf("line %d: %v", e.pos.Line, e.err)
	}
	return e.err.Error()
}

func (e *positionedError) Unwrap() error { return e.err }

type yamlBuilder struct {
	// active holds nodes currently being converted, to reject alias cycles.
	active map[*yaml.Node]bool
	// built counts nodes produced so far; past limit the load fails.
	built int
	limit int
}

func (b *yamlBuilder) build(n *yaml.Node) (Node, error) {
	pos := Position{Line: n.Line, Column: n.Column}

	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		b.built++
		if b.built > b.limit {
			return nil, &positionedError{pos: pos, err: errTooManyNodes}
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errEmptyDocument
		}
		return b.build(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, &positionedError{pos: pos, err: fmt.Errorf("unknown anchor %q", n.Value)}
		}
		if b.active[n.Alias] {
			return nil, &positionedError{pos: pos, err: errAliasCycle}
		}
		return b.build(n.Alias)

	case yaml.MappingNode:
		b.active[n] = true
		defer delete(b.active, n)
		return b.buildMapping(n, pos)

	case yaml.SequenceNode:
		b.active[n] = true
		defer delete(b.active, n)
		seq := NewSequence(pos)
		for _, item := range n.Content {
			child, err := b.build(item)
			if err != nil {
				return nil, err
			}
			seq.Append(child)
		}
		return seq, nil

	case yaml.ScalarNode:
		return NewScalar(pos, yamlScalarType(n), n.Value), nil
	}

	return nil, &positionedError{pos: pos, err: fmt.Errorf("unsupported YAML node kind %d", n.Kind)}
}

func (b *yamlBuilder) buildMapping(n *yaml.Node, pos Position) (*Mapping, error) {
	m := NewMapping(pos)
	var merges []*Mapping

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &positionedError{
				pos: Position{Line: keyNode.Line, Column: keyNode.Column},
				err: errNonScalarMapKey,
			}
		}

		value, err := b.build(valNode)
		if err != nil {
			return nil, err
		}

		if keyNode.ShortTag() == "!!merge" {
			merges = append(merges, mergeSources(value)...)
			continue
		}
		m.Set(keyNode.Value, value)
	}

	// Explicit keys win over merged ones; earlier merge sources win over later ones.
	for _, src := range merges {
		for k, v := range src.All() {
			if !m.Has(k) {
				m.Set(k, v)
			}
		}
	}
	return m, nil
}

func mergeSources(value Node) []*Mapping {
	if m, ok := AsMapping(value); ok {
		return []*Mapping{m}
	}
	var out []*Mapping
	if s, ok := AsSequence(value); ok {
		for _, item := range s.All() {
			if m, ok := AsMapping(item); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

func yamlScalarType(n *yaml.Node) ScalarType {
	switch n.ShortTag() {
	case "!!int", "!!float":
		return ScalarNumber
	case "!!bool":
		return ScalarBool
	case "!!null":
		return ScalarNull
	default:
		return ScalarString
	}
}
