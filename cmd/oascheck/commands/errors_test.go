package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oascheck/oaserrors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "validation failed", err: errValidationFailed, want: ExitFailed},
		{name: "usage", err: usageError{errors.New("missing argument")}, want: ExitUsage},
		{name: "wrapped config", err: fmt.Errorf("loading: %w", &oaserrors.ConfigError{Option: "format"}), want: ExitUsage},
		{name: "other", err: errors.New("boom"), want: ExitFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
