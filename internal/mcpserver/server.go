// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oascheck's validator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oascheck"
)

const serverInstructions = `oascheck MCP server: checks OpenAPI 3.x documents for defects that break code generation (missing sections, dangling $refs, discriminator mismatches, required properties that are not defined, unused schemas).

Configuration: defaults come from OASCHECK_* environment variables set in your MCP client config.

Key settings:
- OASCHECK_STRICT (default: false): warnings fail the document
- OASCHECK_NO_WARNINGS (default: false): drop warnings from results
- OASCHECK_VERSION_PREFIX (default: 3.): accepted openapi version prefix
- OASCHECK_RESULT_LIMIT (default: 100): default page size for findings
- OASCHECK_CACHE_ENABLED (default: true): cache loaded documents per session
- OASCHECK_CACHE_FILE_TTL (default: 15m): cache TTL for file inputs

Caching: file entries use path+mtime as key, so edits are picked up on the next call.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer(ctx).Run(ctx, &mcp.StdioTransport{})
}

func newServer(ctx context.Context) *mcp.Server {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oascheck", Version: oascheck.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check an OpenAPI 3.x document for structural gaps, unresolved internal $refs, discriminator mismatches, required properties missing from properties, and unused schemas. Returns errors and warnings with dotted paths and source lines. Use no_warnings to focus on errors first and offset/limit to paginate. Strict mode makes warnings fail the document.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_refs",
		Description: "List the distinct $ref values in a document in first-seen order, with the path where each first appears and whether it resolves. Use internal_only to skip external refs and unresolved_only to list only dangling refs.",
	}, handleExtractRefs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.DefaultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages so they
// are not leaked to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
