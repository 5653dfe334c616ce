package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingPreservesInsertionOrder(t *testing.T) {
	m := NewMapping(Position{})
	m.Set("zeta", String("z"))
	m.Set("alpha", String("a"))
	m.Set("mid", String("m"))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, seen)
}

func TestMappingSetReplacesInPlace(t *testing.T) {
	m := NewMapping(Position{})
	m.Set("a", String("1"))
	m.Set("b", String("2"))
	m.Set("a", String("3"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := StringValue(mustGet(t, m, "a"))
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestNilContainersAreEmpty(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Keys())

	var s *Sequence
	assert.Equal(t, 0, s.Len())
	_, ok := s.Index(0)
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	describe := func(n Node) string {
		return Match(n,
			func(*Mapping) string { return "mapping" },
			func(*Sequence) string { return "sequence" },
			func(s *Scalar) string { return "scalar:" + s.Type().String() },
		)
	}

	assert.Equal(t, "mapping", describe(NewMapping(Position{})))
	assert.Equal(t, "sequence", describe(NewSequence(Position{})))
	assert.Equal(t, "scalar:string", describe(String("x")))
	assert.Equal(t, "scalar:number", describe(NewScalar(Position{}, ScalarNumber, "1")))
	assert.Equal(t, "", describe(nil))
}

func TestChild(t *testing.T) {
	seq := NewSequence(Position{}, String("first"), String("second"))
	root := NewMapping(Position{}).
		Set("list", seq).
		Set("leaf", String("x"))

	tests := []struct {
		name    string
		node    Node
		segment string
		want    string
		ok      bool
	}{
		{"mapping key", root, "leaf", "x", true},
		{"missing key", root, "nope", "", false},
		{"sequence index", seq, "1", "second", true},
		{"index out of range", seq, "2", "", false},
		{"negative index", seq, "-1", "", false},
		{"leading zero", seq, "01", "", false},
		{"non numeric index", seq, "first", "", false},
		{"empty segment on sequence", seq, "", "", false},
		{"scalar has no children", String("x"), "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Child(tt.node, tt.segment)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				v, _ := StringValue(got)
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestStringValueRejectsNonStrings(t *testing.T) {
	_, ok := StringValue(NewScalar(Position{}, ScalarBool, "true"))
	assert.False(t, ok)

	_, ok = StringValue(NewMapping(Position{}))
	assert.False(t, ok)

	text, ok := Text(NewScalar(Position{}, ScalarNumber, "3.0"))
	assert.True(t, ok)
	assert.Equal(t, "3.0", text)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func mustGet(t *testing.T, m *Mapping, key string) Node {
	t.Helper()
	n, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return n
}
