package oascheck

import "fmt"

var (
	// version, commit and buildTime are set via ldflags during release builds.
	// For development builds they keep their defaults.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown'
func BuildTime() string {
	return buildTime
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("oascheck/%s", version)
}
