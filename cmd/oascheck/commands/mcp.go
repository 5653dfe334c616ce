package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oascheck/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the validator as MCP tools over stdio",
		Long: `Start an MCP (Model Context Protocol) server on stdin/stdout.

Tools: validate, extract_refs. Defaults are read from OASCHECK_*
environment variables set in the MCP client config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
