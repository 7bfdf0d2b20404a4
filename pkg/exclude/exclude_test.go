package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleSet(t *testing.T) {
	rs := NewRuleSet(nil)
	require.NotNil(t, rs)
	assert.Equal(t, 0, rs.Len())
}

func TestCompileLines_SkipsCommentsAndBlanks(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("# a comment", "", "   ", "*.log")
	assert.Equal(t, 1, rs.Len())
}

func TestMatchesPath_Wildcard(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("*.log")

	assert.True(t, rs.MatchesPath("a.log"))
	assert.True(t, rs.MatchesPath("nested/dir/a.log"))
	assert.False(t, rs.MatchesPath("a.log.txt"))
	assert.False(t, rs.MatchesPath("a.txt"))
}

func TestMatchesPath_DirectoryPattern(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("build/")

	assert.True(t, rs.MatchesPath("build/"))
	assert.True(t, rs.MatchesPath("build/main.o"))
	assert.True(t, rs.MatchesPath("src/build/out.txt"))
	assert.False(t, rs.MatchesPath("build"), "plain file named build should not match a directory pattern")
}

func TestMatchesPath_RootAnchored(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("/vendor")

	assert.True(t, rs.MatchesPath("vendor"))
	assert.True(t, rs.MatchesPath("vendor/lib.go"))
	assert.False(t, rs.MatchesPath("pkg/vendor"))
}

func TestMatchesPath_DoubleStar(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("docs/**")

	assert.True(t, rs.MatchesPath("docs"))
	assert.True(t, rs.MatchesPath("docs/guide/intro.md"))
	assert.False(t, rs.MatchesPath("src/main.go"))
}

func TestMatchesPath_Negation(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("*.md", "!README.md")

	assert.True(t, rs.MatchesPath("CHANGELOG.md"))
	assert.False(t, rs.MatchesPath("README.md"))
	assert.False(t, rs.MatchesPath("docs/README.md"))
}

func TestMatchesPathWithPattern_ReturnsDecidingPattern(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("*.tmp")

	matched, p := rs.MatchesPathWithPattern("scratch.tmp")
	require.True(t, matched)
	require.NotNil(t, p)
	assert.Equal(t, "*.tmp", p.Line)

	matched, p = rs.MatchesPathWithPattern("keep.go")
	assert.False(t, matched)
	assert.Nil(t, p)
}

func TestMatchesPath_QuestionMark(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.CompileLines("file?.txt")

	assert.True(t, rs.MatchesPath("file1.txt"))
	assert.True(t, rs.MatchesPath("fileA.txt"))
	assert.False(t, rs.MatchesPath("file10.txt"))
}
