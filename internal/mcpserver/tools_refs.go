package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oascheck/validator"
)

type extractRefsInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OpenAPI document to scan"`
	InternalOnly   bool      `json:"internal_only,omitempty"   jsonschema:"Only list refs that start with #/"`
	UnresolvedOnly bool      `json:"unresolved_only,omitempty" jsonschema:"Only list internal refs that do not resolve"`
	Offset         int       `json:"offset,omitempty"          jsonschema:"Skip the first N refs (for pagination)"`
	Limit          int       `json:"limit,omitempty"           jsonschema:"Maximum number of refs to return (default 100)"`
}

type refSummary struct {
	Ref      string `json:"ref"`
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Internal bool   `json:"internal"`
	Resolves bool   `json:"resolves"`
	Problem  string `json:"problem,omitempty"`
}

type extractRefsOutput struct {
	Total    int          `json:"total"`
	Matched  int          `json:"matched"`
	Returned int          `json:"returned"`
	Refs     []refSummary `json:"refs,omitempty"`
}

func handleExtractRefs(_ context.Context, _ *mcp.CallToolRequest, input extractRefsInput) (*mcp.CallToolResult, extractRefsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), extractRefsOutput{}, nil
	}

	refs := validator.ExtractRefs(doc.Root)
	matched := makeSlice[refSummary](refs.Len())
	for ref := range refs.All() {
		s := refSummary{
			Ref:      ref.Value,
			Path:     ref.Path,
			Line:     ref.Pos.Line,
			Internal: ref.Internal(),
		}
		if s.Internal {
			if _, err := validator.Resolve(doc.Root, ref.Value); err != nil {
				s.Problem = err.Error()
			} else {
				s.Resolves = true
			}
		}

		if input.InternalOnly && !s.Internal {
			continue
		}
		if input.UnresolvedOnly && (!s.Internal || s.Resolves) {
			continue
		}
		matched = append(matched, s)
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, extractRefsOutput{
		Total:    refs.Len(),
		Matched:  len(matched),
		Returned: len(page),
		Refs:     page,
	}, nil
}
