package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.0", CommitHash: "0123456789abcdef", BuildTime: "2024-01-01"}
	assert.Equal(t, "astgen v1.2.0 (commit 0123456, built 2024-01-01)", info.String())
	assert.Equal(t, "0123456", info.Short())

	info.CommitHash = "dev"
	assert.Equal(t, "dev", info.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, DescriptionVersions, info.DescriptionVersions)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
