package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()
	assert.Equal(t, Version, v.Version)
	assert.Equal(t, Commit, v.GitCommit)
	assert.NotEmpty(t, v.GoVersion)
	assert.Contains(t, v.Platform, "/")
}

func TestString(t *testing.T) {
	v := Get()
	s := v.String()
	assert.Contains(t, s, "gitfeed version")
	assert.Contains(t, s, v.Version)
	assert.Contains(t, s, v.Platform)
}
