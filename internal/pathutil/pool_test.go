package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSeedsPrefix(t *testing.T) {
	p := Acquire("components", "schemas")
	defer Release(p)

	assert.Equal(t, "components.schemas", p.String())
	p.PushKey("Pet")
	assert.Equal(t, "components.schemas.Pet", p.String())
	p.Pop()
	assert.Equal(t, "components.schemas", p.String())
}

func TestAcquireWithoutPrefixIsEmpty(t *testing.T) {
	p := Acquire()
	p.Push("leftover")
	Release(p)

	p2 := Acquire()
	defer Release(p2)
	assert.Empty(t, p2.String())
}

func TestReleaseClearsSegments(t *testing.T) {
	p := &PathBuilder{segments: make([]string, 0, walkDepthHint)}
	p.Push("components")
	p.PushKey("Pet")
	Release(p)

	require.Equal(t, 0, len(p.segments))
	for _, seg := range p.segments[:cap(p.segments)] {
		assert.Empty(t, seg)
	}
}

func TestReleaseDropsDeepBuilders(t *testing.T) {
	p := &PathBuilder{}
	for range maxPooledDepth + 1 {
		p.Push("x")
	}
	Release(p)

	// Not pooled, so left as it was.
	assert.Equal(t, maxPooledDepth+1, len(p.segments))
}

func TestReleaseNil(t *testing.T) {
	assert.NotPanics(t, func() { Release(nil) })
}
