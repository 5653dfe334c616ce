package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warnOnlyYAML = `openapi: "3.0.0"
info:
  title: Test API
  version: "1.0.0"
paths: {}
components:
  schemas:
    Unused: {type: object}
    AlsoUnused: {type: object}
`

func TestValidateTool_ValidSpec(t *testing.T) {
	docCache.reset()
	input := validateInput{Spec: specInput{Content: minimalYAML}}
	res, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.True(t, output.Valid)
	assert.True(t, output.Passed)
	assert.Equal(t, "3.0.0", output.Version)
	assert.Empty(t, output.Errors)
}

func TestValidateTool_InvalidSpec(t *testing.T) {
	docCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Test API
`
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec: specInput{Content: content},
	})
	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, "structural", output.Errors[0].Kind)
	assert.Equal(t, "paths", output.Errors[0].Path)
}

func TestValidateTool_StrictAndNoWarnings(t *testing.T) {
	docCache.reset()
	strict, noWarnings := true, true

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec:   specInput{Content: warnOnlyYAML},
		Strict: &strict,
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.False(t, output.Passed)
	assert.Equal(t, 2, output.WarningCount)

	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec:       specInput{Content: warnOnlyYAML},
		Strict:     &strict,
		NoWarnings: &noWarnings,
	})
	require.NoError(t, err)
	assert.True(t, output.Passed)
	assert.Empty(t, output.Warnings)
}

func TestValidateTool_Pagination(t *testing.T) {
	docCache.reset()
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec:   specInput{Content: warnOnlyYAML},
		Offset: 1,
		Limit:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.WarningCount)
	require.Len(t, output.Warnings, 1)
	assert.Equal(t, "components.schemas.AlsoUnused", output.Warnings[0].Path)
	assert.Equal(t, 1, output.Returned)
}

func TestValidateTool_MalformedContentIsLoadFailure(t *testing.T) {
	docCache.reset()
	res, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec: specInput{Content: "openapi: [unclosed\n"},
	})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, "load-failure", output.Errors[0].Kind)
	assert.Equal(t, 0, output.WarningCount)
}

func TestValidateTool_MissingInputIsToolError(t *testing.T) {
	res, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
