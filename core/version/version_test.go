package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildSettings(t *testing.T) {
	assert := assert.New(t)

	v := fromBuildSettings(nil)
	assert.Equal(V, v)

	v = fromBuildSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
		{Key: "vcs.time", Value: "2024-03-05T06:07:08Z"},
		{Key: "vcs.modified", Value: "true"},
	})
	assert.Equal("0123456789abcdef0123456789abcdef01234567", v.Commit)
	assert.True(v.Dirty)
	assert.Equal("v0.0.0-20240305060708-0123456789ab-dirty", v.String())

	v = fromBuildSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
		{Key: "vcs.time", Value: "2024-03-05T06:07:08Z"},
		{Key: "vcs.modified", Value: "false"},
	})
	assert.False(v.Dirty)
	assert.Equal("v0.0.0-20240305060708-0123456789ab", v.String())
}
