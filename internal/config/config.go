// Package config resolves CLI settings from defaults, an optional YAML
// config file, OASCHECK_* environment variables and command-line flags,
// in that order of increasing precedence.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascheck/oaserrors"
	"github.com/erraggy/oascheck/validator"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".oascheck.yaml"

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "OASCHECK_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the resolved settings of a validate run.
type Config struct {
	Strict        bool   `yaml:"strict"`
	NoWarnings    bool   `yaml:"no_warnings"`
	Quiet         bool   `yaml:"quiet"`
	Format        string `yaml:"format"`
	Concurrency   int    `yaml:"concurrency"`
	VersionPrefix string `yaml:"version_prefix"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

// fileConfig mirrors Config with pointers so unset keys keep lower layers.
type fileConfig struct {
	Strict        *bool   `yaml:"strict"`
	NoWarnings    *bool   `yaml:"no_warnings"`
	Quiet         *bool   `yaml:"quiet"`
	Format        *string `yaml:"format"`
	Concurrency   *int    `yaml:"concurrency"`
	VersionPrefix *string `yaml:"version_prefix"`
	LogLevel      *string `yaml:"log_level"`
	LogFormat     *string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:        FormatText,
		Concurrency:   1,
		VersionPrefix: validator.DefaultVersionPrefix,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load resolves defaults, then the config file, then the environment.
// path names the config file; when empty, OASCHECK_CONFIG and then
// DefaultFileName are tried, and a missing default file is not an error.
func Load(path string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()

	required := path != ""
	if !required {
		if v, ok := lookup(EnvPrefix + "CONFIG"); ok && strings.TrimSpace(v) != "" {
			path, required = strings.TrimSpace(v), true
		} else {
			path = DefaultFileName
		}
	}

	if err := cfg.ApplyFile(path, required); err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv(lookup)
	return cfg, nil
}

// ApplyFile overlays the keys set in the YAML file at path. If required is
// false a missing file is ignored. The file must match the embedded schema.
func (c *Config) ApplyFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &oaserrors.ConfigError{Option: path, Message: "cannot read config file", Cause: err}
	}
	return c.ApplyYAML(data, path)
}

// ApplyYAML overlays settings from YAML text; source names it in errors.
func (c *Config) ApplyYAML(data []byte, source string) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	if err := validateAgainstSchema(data); err != nil {
		return &oaserrors.ConfigError{Option: source, Message: "does not match the config schema", Cause: err}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &oaserrors.ConfigError{Option: source, Message: "invalid YAML", Cause: err}
	}
	setBool(&c.Strict, fc.Strict)
	setBool(&c.NoWarnings, fc.NoWarnings)
	setBool(&c.Quiet, fc.Quiet)
	setString(&c.Format, fc.Format)
	if fc.Concurrency != nil {
		c.Concurrency = *fc.Concurrency
	}
	setString(&c.VersionPrefix, fc.VersionPrefix)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	return nil
}

// ApplyEnv overlays OASCHECK_* variables. Unparseable values are logged
// and ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	c.Strict = envBool(lookup, "STRICT", c.Strict)
	c.NoWarnings = envBool(lookup, "NO_WARNINGS", c.NoWarnings)
	c.Quiet = envBool(lookup, "QUIET", c.Quiet)
	c.Format = envString(lookup, "FORMAT", c.Format)
	c.Concurrency = envInt(lookup, "CONCURRENCY", c.Concurrency)
	c.VersionPrefix = envString(lookup, "VERSION_PREFIX", c.VersionPrefix)
	c.LogLevel = envString(lookup, "LOG_LEVEL", c.LogLevel)
	c.LogFormat = envString(lookup, "LOG_FORMAT", c.LogFormat)
}

// Validate checks the settings that flags and environment can set freely.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return &oaserrors.ConfigError{Option: "format", Value: c.Format, Message: "must be text, json or yaml"}
	}
	if c.Concurrency < 1 {
		return &oaserrors.ConfigError{Option: "concurrency", Value: c.Concurrency, Message: "must be at least 1"}
	}
	if c.VersionPrefix == "" {
		return &oaserrors.ConfigError{Option: "version-prefix", Message: "must not be empty"}
	}
	return nil
}

// ValidatorOptions translates the settings into validator options.
func (c Config) ValidatorOptions() []validator.Option {
	return []validator.Option{
		validator.WithIncludeWarnings(!c.NoWarnings),
		validator.WithStrictMode(c.Strict),
		validator.WithVersionPrefix(c.VersionPrefix),
		validator.WithConcurrency(c.Concurrency),
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func envString(lookup LookupFunc, name, fallback string) string {
	v, ok := lookup(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func envBool(lookup LookupFunc, name string, fallback bool) bool {
	v, ok := lookup(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid boolean env var, using default", "key", EnvPrefix+name, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(lookup LookupFunc, name string, fallback int) int {
	v, ok := lookup(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid integer env var, using default", "key", EnvPrefix+name, "value", v, "default", fallback)
		return fallback
	}
	return n
}
