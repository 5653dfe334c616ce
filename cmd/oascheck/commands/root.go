// Package commands provides the cobra command tree for oascheck.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erraggy/oascheck/internal/cliutil"
	"github.com/erraggy/oascheck/internal/config"
	"github.com/erraggy/oascheck/internal/logging"
)

// rootOptions holds the persistent flags and the settings resolved from them.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string

	// cfg is resolved in PersistentPreRunE before any subcommand runs.
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "oascheck",
		Short:         "Check OpenAPI 3.x documents for defects that break code generation",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath, os.LookupEnv)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.LogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.LogFormat
			}
			if _, err := logging.Configure(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
				return usageError{err}
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default "+config.DefaultFileName+" if present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "Log format (text, json)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.AddCommand(
		newValidateCmd(opts),
		newMCPCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command line in os.Args and returns the exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, newRootCmd())
}

func run(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if !errors.Is(err, errValidationFailed) {
		cliutil.WriteError(cmd.ErrOrStderr(), err)
	}
	return ExitCode(err)
}

// minimumArgs wraps cobra.MinimumNArgs so that a missing argument is a usage error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError{fmt.Errorf("%s: %w", cmd.Name(), err)}
		}
		return nil
	}
}
