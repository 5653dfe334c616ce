package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental path construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
//
// Segments are joined with dots; index and quoted-key segments start with
// '[' and are appended without a separator.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a segment to the path verbatim.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 && !isBracketed(segment) {
		p.length++ // For dot separator
	}
	p.length += len(segment)
}

// PushKey adds a mapping key, quoting it when it would make the dotted path
// ambiguous (keys containing '.', '[' or ']').
func (p *PathBuilder) PushKey(key string) {
	p.Push(keySegment(key))
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.Push("[" + strconv.Itoa(i) + "]")
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 && !isBracketed(last) {
		p.length--
	}
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path. Only call when the path is needed.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isBracketed(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Join appends a mapping key to a dotted path.
func Join(base, key string) string {
	seg := keySegment(key)
	if base == "" || isBracketed(seg) {
		return base + seg
	}
	return base + "." + seg
}

// Index appends a sequence index to a dotted path.
func Index(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

func keySegment(key string) string {
	if strings.ContainsAny(key, ".[]") {
		return "[" + strconv.Quote(key) + "]"
	}
	return key
}

func isBracketed(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}
