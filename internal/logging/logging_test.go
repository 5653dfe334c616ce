package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "info", want: slog.LevelInfo},
		{input: " DEBUG ", want: slog.LevelDebug},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "bad", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: "bad", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestConfigure(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Configure("warn", "json", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "file", "api.yaml")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"file":"api.yaml"`)
	assert.Same(t, logger, slog.Default())
}

func TestConfigureRejectsBadInput(t *testing.T) {
	_, err := Configure("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = Configure("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
