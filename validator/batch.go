package validator

import (
	"context"
	"os"
	"sync"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/options"
	"github.com/erraggy/oascheck/oaserrors"
)

// StdinPath is the path ValidateFiles reads from standard input.
const StdinPath = "-"

// BatchResult holds the results of validating several files.
type BatchResult struct {
	// Results holds one result per input path, in input order
	Results []*ValidationResult `json:"results" yaml:"results"`
	// ErrorCount is the total number of errors across all files
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the total number of warnings across all files
	WarningCount int `json:"warning_count" yaml:"warning_count"`
}

// Passed reports whether every file passed under the given policy.
func (b *BatchResult) Passed(strict bool) bool {
	for _, r := range b.Results {
		if !r.Passed(strict) {
			return false
		}
	}
	return true
}

// Failed returns the number of files that did not pass.
func (b *BatchResult) Failed(strict bool) int {
	n := 0
	for _, r := range b.Results {
		if !r.Passed(strict) {
			n++
		}
	}
	return n
}

// ValidateFiles validates each path with its own validator. Results never
// share state and are returned in input order. Up to WithConcurrency files
// are validated at once.
//
// Once ctx is done no new files are started; the remaining paths are
// recorded as load failures carrying the context error. The returned error
// is non-nil only for invalid options.
func ValidateFiles(ctx context.Context, paths []string, opts ...Option) (*BatchResult, error) {
	cfg, err := applySettings(opts...)
	if err != nil {
		return nil, err
	}
	if options.CountSet(cfg.hasSources()...) > 0 {
		return nil, &oaserrors.ConfigError{
			Option:  "input source",
			Message: "ValidateFiles takes its inputs from paths",
		}
	}

	results := make([]*ValidationResult, len(paths))
	sem := make(chan struct{}, cfg.concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		select {
		case <-ctx.Done():
			results[i] = cfg.newValidator().loadFailure(path, cancelled(path, ctx.Err()))
			continue
		case sem <- struct{}{}:
		}
		// Check again: select picks randomly when both cases are ready.
		if err := ctx.Err(); err != nil {
			<-sem
			results[i] = cfg.newValidator().loadFailure(path, cancelled(path, err))
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = cfg.validateOne(path)
		}()
	}
	wg.Wait()

	batch := &BatchResult{Results: results}
	for _, r := range results {
		batch.ErrorCount += r.ErrorCount
		batch.WarningCount += r.WarningCount
	}
	cfg.logger.Info("validated files",
		"files", len(paths),
		"errors", batch.ErrorCount,
		"warnings", batch.WarningCount,
	)
	return batch, nil
}

func (cfg *validateConfig) validateOne(path string) *ValidationResult {
	v := cfg.newValidator()
	if path != StdinPath {
		return v.Validate(path)
	}

	stdin := cfg.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	result := v.ValidateReader(stdin, document.FormatUnknown)
	result.SourcePath = StdinPath
	return result
}

func cancelled(path string, err error) error {
	return &oaserrors.ParseError{Path: path, Message: "validation cancelled", Cause: err}
}
