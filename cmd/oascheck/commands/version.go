package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oascheck"
	"github.com/erraggy/oascheck/internal/cliutil"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			cliutil.Writef(out, "oascheck v%s\n", oascheck.Version())
			cliutil.Writef(out, "commit: %s\n", oascheck.Commit())
			cliutil.Writef(out, "built: %s\n", oascheck.BuildTime())
		},
	}
}
