package pathutil

import "sync"

const (
	// A schema walk is rarely deeper than components.schemas.X.properties.Y.
	walkDepthHint = 8
	// Builders grown past this depth by recursive schemas are not pooled.
	maxPooledDepth = 64
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, walkDepthHint)}
	},
}

// Acquire returns an empty pooled PathBuilder with each prefix segment
// already pushed verbatim. Pair every call with [Release].
func Acquire(prefix ...string) *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	for _, seg := range prefix {
		p.Push(seg)
	}
	return p
}

// Release hands p back to the pool. The segment strings it held are cleared
// so a pooled builder does not keep a parsed document's keys alive.
func Release(p *PathBuilder) {
	if p == nil {
		return
	}
	if cap(p.segments) > maxPooledDepth {
		return
	}
	clear(p.segments[:cap(p.segments)])
	p.Reset()
	builders.Put(p)
}
