package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globstari-go/globstari/internal/glob"
)

func TestParseLines_SkipsCommentsAndBlankLines(t *testing.T) {
	m := glob.NewMatcher()
	contents := []byte("# a comment\n\n   \nignored*\n")
	assert.NoError(t, ParseLines(contents, "/root", m))
	assert.NoError(t, m.Finalize())

	ok, err := m.Contains("/root/ignored-thing")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestParseLines_EscapedHashSurvivesTruncation(t *testing.T) {
	// Scenario D: a line "file\#1" in the ignore file ignores
	// "/root/file#1" but not "/root/file#2".
	m := glob.NewMatcher()
	contents := []byte(`file\#1` + "\n")
	assert.NoError(t, ParseLines(contents, "/root", m))
	assert.NoError(t, m.Finalize())

	ok, err := m.Contains("/root/file#1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Contains("/root/file#2")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestParseLines_UnescapedHashTruncates(t *testing.T) {
	m := glob.NewMatcher()
	contents := []byte("real-pattern # trailing comment\n")
	assert.NoError(t, ParseLines(contents, "/root", m))
	assert.NoError(t, m.Finalize())

	ok, err := m.Contains("/root/real-pattern")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestParseLines_TrimsCarriageReturn(t *testing.T) {
	m := glob.NewMatcher()
	contents := []byte("ignored*\r\n")
	assert.NoError(t, ParseLines(contents, "/root", m))
	assert.NoError(t, m.Finalize())

	ok, err := m.Contains("/root/ignored-thing")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestParseLines_PolarityOverride(t *testing.T) {
	m := glob.NewMatcher()
	contents := []byte("*\n!keep-me\n")
	assert.NoError(t, ParseLines(contents, "/root", m))
	assert.NoError(t, m.Finalize())

	// The later "!keep-me" GlobSet is checked first (reverse insertion
	// order) and overrides the earlier "*" for that one path.
	res, err := m.Check("/root/keep-me")
	assert.NoError(t, err)
	assert.Equal(t, glob.Excluded, res)

	res, err = m.Check("/root/anything-else")
	assert.NoError(t, err)
	assert.Equal(t, glob.Included, res)
}
