package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/oascheck/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"api.yaml", FormatYAML},
		{"api.yml", FormatYAML},
		{"API.YAML", FormatYAML},
		{"api.json", FormatJSON},
		{"api", FormatJSON},
		{"api.txt", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFromPath(tt.path), tt.path)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte("  \n{\"a\":1}")))
	assert.Equal(t, FormatJSON, DetectFormat([]byte("[]")))
	assert.Equal(t, FormatYAML, DetectFormat([]byte("a: 1")))
	assert.Equal(t, FormatYAML, DetectFormat(nil))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("openapi: 3.0.0\n"), 0o600))

	doc, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, doc.Format)
	assert.Equal(t, yamlPath, doc.SourcePath)
	assert.Equal(t, int64(len("openapi: 3.0.0\n")), doc.SourceSize)
	assert.True(t, doc.Root.Has("openapi"))
}

func TestLoadJSONExtensionIsStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.0\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	var pe *oaserrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, pe.Error(), "invalid JSON")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseRootNotMappingCarriesLine(t *testing.T) {
	_, err := Parse([]byte("\n\n- a\n"), FormatYAML)
	require.Error(t, err)

	var pe *oaserrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Contains(t, pe.Error(), "root must be a mapping")
}

func TestLoadReaderSniffsFormat(t *testing.T) {
	doc, err := LoadReader(strings.NewReader(`{"openapi": "3.0.0"}`), FormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, doc.Format)
	assert.Empty(t, doc.SourcePath)

	doc, err = LoadReader(strings.NewReader("openapi: 3.0.0\n"), FormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, doc.Format)
}
