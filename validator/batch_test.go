package validator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/oaserrors"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestValidateFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml":    petstoreYAML,
		"warn.yaml":    petstoreYAML + "    Dog: {}\n",
		"broken.json":  `{"openapi": "3.0.0"`,
		"missing.yaml": "openapi: 3.0.0\n",
	})
	paths := []string{
		filepath.Join(dir, "good.yaml"),
		filepath.Join(dir, "warn.yaml"),
		filepath.Join(dir, "broken.json"),
		filepath.Join(dir, "missing.yaml"),
	}

	for _, workers := range []int{1, 3} {
		batch, err := ValidateFiles(context.Background(), paths, WithConcurrency(workers))
		require.NoError(t, err)
		require.Len(t, batch.Results, len(paths))

		for i, r := range batch.Results {
			assert.Equal(t, paths[i], r.SourcePath)
		}
		assert.True(t, batch.Results[0].Passed(true))
		assert.True(t, batch.Results[1].Passed(false))
		assert.False(t, batch.Results[1].Passed(true))
		assert.True(t, batch.Results[2].LoadFailed())
		assert.Equal(t, 2, batch.Results[3].ErrorCount)

		assert.Equal(t, 3, batch.ErrorCount)
		assert.Equal(t, 1, batch.WarningCount)
		assert.False(t, batch.Passed(false))
		assert.Equal(t, 2, batch.Failed(false))
		assert.Equal(t, 3, batch.Failed(true))
	}
}

func TestValidateFiles_StrictAggregation(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml": petstoreYAML,
		"warn.yaml": petstoreYAML + "    Dog: {}\n",
	})
	paths := []string{filepath.Join(dir, "good.yaml"), filepath.Join(dir, "warn.yaml")}

	batch, err := ValidateFiles(context.Background(), paths, WithStrictMode(true))
	require.NoError(t, err)
	assert.True(t, batch.Passed(false))
	assert.False(t, batch.Passed(true))
	assert.True(t, batch.Results[1].StrictMode)
}

func TestValidateFiles_Stdin(t *testing.T) {
	batch, err := ValidateFiles(context.Background(), []string{StdinPath},
		WithStdin(strings.NewReader(petstoreYAML)))
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)
	assert.Equal(t, StdinPath, batch.Results[0].SourcePath)
	assert.Equal(t, document.FormatYAML, batch.Results[0].Format)
	assert.True(t, batch.Passed(true))
}

func TestValidateFiles_Cancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.yaml": petstoreYAML})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := ValidateFiles(ctx, []string{filepath.Join(dir, "good.yaml")})
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)
	assert.True(t, batch.Results[0].LoadFailed())
	assert.Contains(t, batch.Results[0].Errors[0].Message, "context canceled")
}

func TestValidateFiles_InvalidOptions(t *testing.T) {
	_, err := ValidateFiles(context.Background(), nil, WithConcurrency(0))
	assert.ErrorIs(t, err, oaserrors.ErrConfig)

	_, err = ValidateFiles(context.Background(), nil, WithFilePath("a.yaml"))
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestValidateFiles_Empty(t *testing.T) {
	batch, err := ValidateFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
	assert.True(t, batch.Passed(true))
}
