package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	errTrailingData = errors.New("unexpected data after top-level value")
	errInvalidJSON  = errors.New("invalid JSON syntax")
)

// ParseJSON parses a JSON document into a document tree.
// Object key order is preserved and numbers keep their literal text.
// JSON carries no line information, so node positions are unknown.
func ParseJSON(data []byte) (*Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyDocument
	}
	// The token stream does not check ':' and ',' separators.
	if !json.Valid(data) {
		return nil, errInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &jsonBuilder{dec: dec}

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, errEmptyDocument
	}
	if err != nil {
		return nil, err
	}

	root, err := p.value(tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}

	m, ok := AsMapping(root)
	if !ok {
		return nil, errRootNotMapping
	}
	return m, nil
}

type jsonBuilder struct {
	dec *json.Decoder
}

func (p *jsonBuilder) value(tok json.Token) (Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
	case string:
		return NewScalar(Position{}, ScalarString, v), nil
	case json.Number:
		return NewScalar(Position{}, ScalarNumber, v.String()), nil
	case float64:
		return NewScalar(Position{}, ScalarNumber, strconv.FormatFloat(v, 'g', -1, 64)), nil
	case bool:
		return NewScalar(Position{}, ScalarBool, strconv.FormatBool(v)), nil
	case nil:
		return NewScalar(Position{}, ScalarNull, "null"), nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func (p *jsonBuilder) object() (Node, error) {
	m := NewMapping(Position{})
	for p.dec.More() {
		keyTok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		valTok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := p.value(valTok)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	if err := p.expectDelim('}'); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *jsonBuilder) array() (Node, error) {
	s := NewSequence(Position{})
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		item, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		s.Append(item)
	}
	if err := p.expectDelim(']'); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *jsonBuilder) expectDelim(want json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}
