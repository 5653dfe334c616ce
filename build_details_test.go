package oascheck

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// Release builds set it via ldflags; development builds report "dev".
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommit(t *testing.T) {
	result := Commit()
	assert.NotEmpty(t, result)

	if result != "unknown" {
		assert.GreaterOrEqual(t, len(result), 7, "commit hash too short: %s", result)
		for _, ch := range result {
			assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f'),
				"Commit() should contain only hex characters, got: %s", result)
		}
	}
}

func TestBuildTime(t *testing.T) {
	result := BuildTime()
	assert.NotEmpty(t, result)

	if result != "unknown" {
		_, err := time.Parse(time.RFC3339, result)
		assert.NoError(t, err, "BuildTime() should be RFC3339, got: %s", result)
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.True(t, strings.HasPrefix(ua, "oascheck/"))
	assert.Equal(t, "oascheck/"+Version(), ua)
}
