package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/oascheck/internal/issues"
	"github.com/erraggy/oascheck/validator"
)

// TextOptions controls WriteText.
type TextOptions struct {
	// Strict makes warnings fail a file
	Strict bool
	// Quiet suppresses findings and keeps only the summary lines
	Quiet bool
	// ByKind appends a per-kind count table to the overall summary
	ByKind bool
}

// WriteText writes, for each file, its errors, its warnings and a summary
// line, then an overall line for the batch.
func WriteText(w io.Writer, batch *validator.BatchResult, opts TextOptions) {
	p := message.NewPrinter(language.English)
	multi := len(batch.Results) > 1

	for i, res := range batch.Results {
		if i > 0 && !opts.Quiet {
			p.Fprintf(w, "\n")
		}
		if !opts.Quiet {
			writeFindings(p, w, "Errors", res.ErrorCount, res.Errors)
			writeFindings(p, w, "Warnings", res.WarningCount, res.Warnings)
		}
		writeFileSummary(p, w, res, opts.Strict)
	}

	if multi {
		p.Fprintf(w, "\n")
		writeOverall(p, w, batch, opts.Strict)
	}
	if opts.ByKind && !opts.Quiet {
		writeByKind(p, w, batch)
	}
}

func writeFindings(p *message.Printer, w io.Writer, title string, count int, findings []issues.Issue) {
	if len(findings) == 0 {
		return
	}
	p.Fprintf(w, "%s (%d):\n", title, count)
	for _, f := range findings {
		p.Fprintf(w, "  %s\n", f.String())
	}
}

func writeFileSummary(p *message.Printer, w io.Writer, res *validator.ValidationResult, strict bool) {
	name := displayName(res.SourcePath)
	switch {
	case res.Passed(strict) && res.WarningCount > 0:
		p.Fprintf(w, "✓ %s: validation passed with %d warning(s)\n", name, res.WarningCount)
	case res.Passed(strict):
		p.Fprintf(w, "✓ %s: validation passed\n", name)
	case res.ErrorCount == 0:
		p.Fprintf(w, "✗ %s: validation failed (strict): %d warning(s)\n", name, res.WarningCount)
	case res.WarningCount > 0:
		p.Fprintf(w, "✗ %s: validation failed: %d error(s), %d warning(s)\n", name, res.ErrorCount, res.WarningCount)
	default:
		p.Fprintf(w, "✗ %s: validation failed: %d error(s)\n", name, res.ErrorCount)
	}
}

func writeOverall(p *message.Printer, w io.Writer, batch *validator.BatchResult, strict bool) {
	files := len(batch.Results)
	if batch.Passed(strict) {
		p.Fprintf(w, "✓ %d file(s) passed: %d warning(s)\n", files, batch.WarningCount)
		return
	}
	p.Fprintf(w, "✗ %d of %d file(s) failed: %d error(s), %d warning(s)\n",
		batch.Failed(strict), files, batch.ErrorCount, batch.WarningCount)
}

func writeByKind(p *message.Printer, w io.Writer, batch *validator.BatchResult) {
	var order []issues.Kind
	counts := make(map[issues.Kind]int)
	for _, res := range batch.Results {
		for _, list := range [][]issues.Issue{res.Errors, res.Warnings} {
			for _, f := range list {
				if counts[f.Kind] == 0 {
					order = append(order, f.Kind)
				}
				counts[f.Kind]++
			}
		}
	}
	if len(order) == 0 {
		return
	}

	title := cases.Title(language.English)
	p.Fprintf(w, "\nBy kind:\n")
	for _, k := range order {
		p.Fprintf(w, "  %-28s %d\n", title.String(strings.ReplaceAll(string(k), "-", " ")), counts[k])
	}
}

func displayName(path string) string {
	switch path {
	case "":
		return "<input>"
	case validator.StdinPath:
		return "<stdin>"
	}
	return path
}
