package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_String_Short_Full(t *testing.T) {
	origV, origB, origC := Version, BuildTime, Commit
	defer func() { Version, BuildTime, Commit = origV, origB, origC }()

	Version = "1.2.3"
	BuildTime = "2025-12-22T00:00:00Z"
	Commit = "deadbeef"

	info := Get()
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2025-12-22T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)

	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)

	assert.Equal(t, "1.2.3", Short())
	assert.Contains(t, Full(), "docsmanifest 1.2.3")
	assert.Contains(t, info.String(), "docsmanifest 1.2.3 (commit: deadbeef")
}

func TestApplyBuildSettings(t *testing.T) {
	info := Info{Commit: "unknown", BuildTime: "unknown"}

	applyBuildSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		{Key: "vcs.modified", Value: "true"},
	})

	assert.Equal(t, "0123456789ab", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
	assert.True(t, info.Modified)
	assert.Contains(t, info.String(), "commit: 0123456789ab-dirty")
}

func TestApplyBuildSettings_LdflagsWin(t *testing.T) {
	info := Info{Commit: "deadbeef", BuildTime: "2025-12-22T00:00:00Z"}

	applyBuildSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})

	assert.Equal(t, "deadbeef", info.Commit)
	assert.Equal(t, "2025-12-22T00:00:00Z", info.BuildTime)
	assert.False(t, info.Modified)
}
