package validator

import (
	"io"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/options"
	"github.com/erraggy/oascheck/oaserrors"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set for ValidateWithOptions)
	filePath *string
	doc      *document.Document
	data     []byte
	dataSet  bool
	format   document.Format

	// Configuration options
	includeWarnings bool
	strictMode      bool
	versionPrefix   string
	logger          Logger

	// Batch options
	concurrency int
	stdin       io.Reader
}

func defaultConfig() *validateConfig {
	return &validateConfig{
		includeWarnings: true,
		versionPrefix:   DefaultVersionPrefix,
		logger:          NopLogger{},
		concurrency:     1,
	}
}

// applySettings applies option functions without checking input sources.
func applySettings(opts ...Option) (*validateConfig, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg, err := applySettings(opts...)
	if err != nil {
		return nil, err
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithDocument or WithBytes)",
		"must specify exactly one input source",
		cfg.hasSources()...,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *validateConfig) hasSources() []bool {
	return []bool{cfg.filePath != nil, cfg.doc != nil, cfg.dataSet}
}

func (cfg *validateConfig) newValidator() *Validator {
	return &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		VersionPrefix:   cfg.versionPrefix,
		Logger:          cfg.logger,
	}
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already loaded document as the input source
func WithDocument(doc *document.Document) Option {
	return func(cfg *validateConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "WithDocument", Message: "document must not be nil"}
		}
		cfg.doc = doc
		return nil
	}
}

// WithBytes specifies raw document text as the input source.
// document.FormatUnknown sniffs the content.
func WithBytes(data []byte, format document.Format) Option {
	return func(cfg *validateConfig) error {
		cfg.data = data
		cfg.dataSet = true
		cfg.format = format
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings in the result
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode makes warnings fail the document
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithVersionPrefix sets the openapi version prefix accepted without a warning
// Default: "3."
func WithVersionPrefix(prefix string) Option {
	return func(cfg *validateConfig) error {
		if prefix == "" {
			return &oaserrors.ConfigError{Option: "WithVersionPrefix", Message: "prefix must not be empty"}
		}
		cfg.versionPrefix = prefix
		return nil
	}
}

// WithLogger sets the logger for per-pass diagnostics.
// A nil logger restores the NopLogger default.
func WithLogger(l Logger) Option {
	return func(cfg *validateConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithConcurrency sets how many files ValidateFiles validates at once
// Default: 1
func WithConcurrency(n int) Option {
	return func(cfg *validateConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "WithConcurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithStdin sets the reader ValidateFiles uses for the path "-".
// Default: os.Stdin
func WithStdin(r io.Reader) Option {
	return func(cfg *validateConfig) error {
		cfg.stdin = r
		return nil
	}
}
