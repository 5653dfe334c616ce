// Package logging builds the process-wide slog logger from the CLI's
// --log-level and --log-format settings.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Configure builds a logger writing to out, installs it as the slog
// default, and returns it.
func Configure(levelValue, formatValue string, out io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(levelValue)
	if err != nil {
		return nil, err
	}

	format, err := ParseFormat(formatValue)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// ParseLevel maps debug, info, warn (or warning) and error to a slog level.
// Empty means info.
func ParseLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", value)
	}
}

// ParseFormat accepts text or json. Empty means text.
func ParseFormat(value string) (Format, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q", value)
	}
}
