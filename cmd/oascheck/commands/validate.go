package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/oascheck"
	"github.com/erraggy/oascheck/internal/config"
	"github.com/erraggy/oascheck/internal/report"
	"github.com/erraggy/oascheck/validator"
)

// validateFlags holds the validate command's flags. They override the
// config file and environment only when set on the command line.
type validateFlags struct {
	strict        bool
	noWarnings    bool
	quiet         bool
	format        string
	concurrency   int
	versionPrefix string
	byKind        bool
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	flags := &validateFlags{}
	cmd := &cobra.Command{
		Use:   "validate [flags] <file|->...",
		Short: "Validate OpenAPI documents",
		Long: `Validate one or more OpenAPI 3.x documents.

Each file is checked for missing top-level sections, unresolved internal
$refs, discriminator properties missing from oneOf/anyOf members, required
properties missing from properties, and schemas that are never referenced.
Use '-' to read a document from stdin.

Exit codes:
  0    every file passed
  1    at least one file failed (in strict mode, warnings fail too)
  2    invalid flags or configuration`,
		Example: `  oascheck validate openapi.yaml
  oascheck validate --strict api/*.yaml
  cat openapi.yaml | oascheck validate -q -
  oascheck validate --format json openapi.yaml | jq '.passed'`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.apply(cmd, opts.cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runValidate(cmd, cfg, flags.byKind, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.strict, "strict", false, "treat warnings as failures")
	f.BoolVar(&flags.noWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "quiet mode: only output summary lines")
	f.StringVar(&flags.format, "format", config.FormatText, "output format: text, json, or yaml")
	f.IntVar(&flags.concurrency, "concurrency", 1, "number of files validated at once")
	f.StringVar(&flags.versionPrefix, "version-prefix", validator.DefaultVersionPrefix, "accepted prefix of the openapi field")
	f.BoolVar(&flags.byKind, "by-kind", false, "append finding counts per kind to text output")
	return cmd
}

// apply overlays the flags the user set explicitly onto cfg.
func (f *validateFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	changed := cmd.Flags().Changed
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("no-warnings") {
		cfg.NoWarnings = f.noWarnings
	}
	if changed("quiet") {
		cfg.Quiet = f.quiet
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if changed("version-prefix") {
		cfg.VersionPrefix = f.versionPrefix
	}
	return cfg
}

func runValidate(cmd *cobra.Command, cfg config.Config, byKind bool, paths []string) error {
	opts := append(cfg.ValidatorOptions(),
		validator.WithLogger(validator.NewSlogAdapter(slog.Default())),
		validator.WithStdin(cmd.InOrStdin()),
	)
	batch, err := validator.ValidateFiles(cmd.Context(), paths, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case config.FormatJSON:
		err = report.WriteJSON(out, report.New(batch, cfg.Strict, oascheck.UserAgent()))
	case config.FormatYAML:
		err = report.WriteYAML(out, report.New(batch, cfg.Strict, oascheck.UserAgent()))
	default:
		report.WriteText(out, batch, report.TextOptions{
			Strict: cfg.Strict,
			Quiet:  cfg.Quiet,
			ByKind: byKind,
		})
	}
	if err != nil {
		return fmt.Errorf("writing %s report: %w", cfg.Format, err)
	}

	if !batch.Passed(cfg.Strict) {
		return errValidationFailed
	}
	return nil
}
