// Package options provides shared checks for functional-option configs.
package options

import "github.com/erraggy/oascheck/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources reports, per source, whether it was set. The returned error is a
// *oaserrors.ConfigError for the "input source" option.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	n := CountSet(sources...)
	switch {
	case n == 0:
		return &oaserrors.ConfigError{Option: "input source", Message: noSourceMsg}
	case n > 1:
		return &oaserrors.ConfigError{Option: "input source", Value: n, Message: multiSourceMsg}
	}
	return nil
}

// CountSet returns how many of sources are true.
func CountSet(sources ...bool) int {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	return n
}
