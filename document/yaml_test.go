package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	root, err := ParseYAML([]byte(`openapi: "3.0.3"
info:
  title: Pets
  version: 1
paths: {}
tags:
  - name: pets
  - name: owners
flag: true
nothing: null
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"openapi", "info", "paths", "tags", "flag", "nothing"}, root.Keys())

	info, ok := MappingAt(root, "info")
	require.True(t, ok)
	version := mustGet(t, info, "version").(*Scalar)
	assert.Equal(t, ScalarNumber, version.Type())
	assert.Equal(t, "1", version.Value())

	tags, ok := SequenceAt(root, "tags")
	require.True(t, ok)
	assert.Equal(t, 2, tags.Len())

	assert.Equal(t, ScalarBool, mustGet(t, root, "flag").(*Scalar).Type())
	assert.Equal(t, ScalarNull, mustGet(t, root, "nothing").(*Scalar).Type())
}

func TestParseYAMLRecordsPositions(t *testing.T) {
	root, err := ParseYAML([]byte("a:\n  b: c\n"))
	require.NoError(t, err)

	a := mustGet(t, root, "a")
	assert.Equal(t, Position{Line: 2, Column: 3}, a.Pos())
	b := mustGet(t, a.(*Mapping), "b")
	assert.Equal(t, Position{Line: 2, Column: 6}, b.Pos())
}

func TestParseYAMLAliasesAndMerge(t *testing.T) {
	root, err := ParseYAML([]byte(`base: &base
  type: object
  description: shared
derived:
  <<: *base
  description: own
copy: *base
`))
	require.NoError(t, err)

	derived, ok := MappingAt(root, "derived")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"type", "description"}, derived.Keys())
	desc, _ := StringValue(mustGet(t, derived, "description"))
	assert.Equal(t, "own", desc)

	cp, ok := MappingAt(root, "copy")
	require.True(t, ok)
	typ, _ := StringValue(mustGet(t, cp, "type"))
	assert.Equal(t, "object", typ)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only comment", "# nothing here\n"},
		{"sequence root", "- a\n- b\n"},
		{"scalar root", "just text\n"},
		{"bad indentation", "a:\n  b: 1\n c: 2\n"},
		{"unclosed flow", "a: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseYAMLRejectsAliasExpansionBomb(t *testing.T) {
	src := `a: &a ["x","x","x","x","x","x","x","x","x"]
b: &b [*a,*a,*a,*a,*a,*a,*a,*a,*a]
c: &c [*b,*b,*b,*b,*b,*b,*b,*b,*b]
d: &d [*c,*c,*c,*c,*c,*c,*c,*c,*c]
e: &e [*d,*d,*d,*d,*d,*d,*d,*d,*d]
f: &f [*e,*e,*e,*e,*e,*e,*e,*e,*e]
g: &g [*f,*f,*f,*f,*f,*f,*f,*f,*f]
h: &h [*g,*g,*g,*g,*g,*g,*g,*g,*g]
i: &i [*h,*h,*h,*h,*h,*h,*h,*h,*h]
`
	root, err := ParseYAML([]byte(src))
	require.Error(t, err)
	assert.Nil(t, root)
	assert.ErrorIs(t, err, errTooManyNodes)

	var pe *positionedError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.pos.IsKnown())
}

func TestParseYAMLAcceptsJSON(t *testing.T) {
	root, err := ParseYAML([]byte(`{"openapi": "3.1.0", "paths": {}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"openapi", "paths"}, root.Keys())
}
