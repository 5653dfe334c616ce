// Package report renders batch validation results as text for people or as
// a JSON/YAML document for tools.
package report

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/erraggy/oascheck/internal/issues"
	"github.com/erraggy/oascheck/validator"
)

// Report is the structured form of a batch run.
type Report struct {
	RunID        string `json:"run_id" yaml:"run_id"`
	Tool         string `json:"tool" yaml:"tool"`
	Strict       bool   `json:"strict" yaml:"strict"`
	Passed       bool   `json:"passed" yaml:"passed"`
	FileCount    int    `json:"file_count" yaml:"file_count"`
	FailedCount  int    `json:"failed_count" yaml:"failed_count"`
	ErrorCount   int    `json:"error_count" yaml:"error_count"`
	WarningCount int    `json:"warning_count" yaml:"warning_count"`
	Files        []File `json:"files" yaml:"files"`
}

// File is one document's entry in a Report.
type File struct {
	Path         string          `json:"path" yaml:"path"`
	Format       string          `json:"format,omitempty" yaml:"format,omitempty"`
	Version      string          `json:"version,omitempty" yaml:"version,omitempty"`
	Valid        bool            `json:"valid" yaml:"valid"`
	Passed       bool            `json:"passed" yaml:"passed"`
	ErrorCount   int             `json:"error_count" yaml:"error_count"`
	WarningCount int             `json:"warning_count" yaml:"warning_count"`
	LoadTimeMS   float64         `json:"load_time_ms" yaml:"load_time_ms"`
	SourceSize   int64           `json:"source_size" yaml:"source_size"`
	Stats        validator.Stats `json:"stats" yaml:"stats"`
	Errors       []issues.Issue  `json:"errors" yaml:"errors"`
	Warnings     []issues.Issue  `json:"warnings" yaml:"warnings"`
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a ULID for a run started at t.
func NewRunID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t.UTC()), entropy).String()
}

// New builds a Report from a batch result under the given strictness.
// tool identifies the producer, usually the CLI's user agent.
func New(batch *validator.BatchResult, strict bool, tool string) *Report {
	r := &Report{
		RunID:        NewRunID(time.Now()),
		Tool:         tool,
		Strict:       strict,
		Passed:       batch.Passed(strict),
		FileCount:    len(batch.Results),
		FailedCount:  batch.Failed(strict),
		ErrorCount:   batch.ErrorCount,
		WarningCount: batch.WarningCount,
		Files:        make([]File, 0, len(batch.Results)),
	}
	for _, res := range batch.Results {
		r.Files = append(r.Files, newFile(res, strict))
	}
	return r
}

func newFile(res *validator.ValidationResult, strict bool) File {
	f := File{
		Path:         res.SourcePath,
		Version:      res.Version,
		Valid:        res.Valid,
		Passed:       res.Passed(strict),
		ErrorCount:   res.ErrorCount,
		WarningCount: res.WarningCount,
		LoadTimeMS:   float64(res.LoadTime.Microseconds()) / 1000,
		SourceSize:   res.SourceSize,
		Stats:        res.Stats,
		Errors:       res.Errors,
		Warnings:     res.Warnings,
	}
	if !res.LoadFailed() {
		f.Format = res.Format.String()
	}
	return f
}
