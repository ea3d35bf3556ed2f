package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_ReverseIterationOverride(t *testing.T) {
	// "*.txt, !text.txt" -- the later "!text.txt" overrides the earlier
	// "*.txt" for that one file (spec.md §4.4, §8 property 1).
	m := NewMatcher()
	assert.NoError(t, m.Add("/root**/*.txt"))
	assert.NoError(t, m.Add("!/root**/text.txt"))
	assert.NoError(t, m.Finalize())

	res, err := m.Check("/root/text.txt")
	assert.NoError(t, err)
	assert.Equal(t, Excluded, res)

	res, err = m.Check("/root/text2.txt")
	assert.NoError(t, err)
	assert.Equal(t, Included, res)
}

func TestMatcher_ReincludeAfterExclude(t *testing.T) {
	// "*.bak, *.swp, !*.foo, *.bar" style include->exclude->re-include
	// chain (spec.md §4.4 rationale).
	m := NewMatcher()
	assert.NoError(t, m.Add("/root**/*"))
	assert.NoError(t, m.Add("!/root**/ignored*"))
	assert.NoError(t, m.Add("/root**/ignored-also"))
	assert.NoError(t, m.Finalize())

	res, _ := m.Check("/root/ignored-also")
	assert.Equal(t, Included, res)

	res, _ = m.Check("/root/ignored-other")
	assert.Equal(t, Excluded, res)
}

func TestMatcher_UnknownWhenNoneMatch(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.Add("/root**/*.txt"))
	assert.NoError(t, m.Finalize())

	res, err := m.Check("/root/other.go")
	assert.NoError(t, err)
	assert.Equal(t, Unknown, res)
}

func TestMatcher_EmptyPathIsUnknown(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.Finalize())
	res, err := m.Check("")
	assert.NoError(t, err)
	assert.Equal(t, Unknown, res)
}

func TestMatcher_RelativePathFails(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.Finalize())
	_, err := m.Check("relative/path")
	assert.ErrorIs(t, err, ErrRelativePath)
}

func TestMatcher_NotReadyBeforeFinalize(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.Add("*.txt"))
	_, err := m.Check("/x")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestMatcher_ParentDelegation(t *testing.T) {
	parent := NewMatcher()
	assert.NoError(t, parent.Add("/root**/ignored*"))
	assert.NoError(t, parent.Finalize())

	child := NewMatcherWithParent(parent)
	assert.NoError(t, child.Finalize())

	ok, err := child.Contains("/root/ignored-thing")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatcher_ChildReincludeOverridesParent(t *testing.T) {
	parent := NewMatcher()
	assert.NoError(t, parent.Add("/root**/ignored*"))
	assert.NoError(t, parent.Finalize())

	child := NewMatcherWithParent(parent)
	assert.NoError(t, child.Add("!/root**/ignored-but-wanted"))
	assert.NoError(t, child.Finalize())

	// The child's "!" rule decides first, so the re-included path is no
	// longer ignored (Excluded); other paths fall through to the parent's
	// ignore rule (Included).
	res, err := child.Check("/root/ignored-but-wanted")
	assert.NoError(t, err)
	assert.Equal(t, Excluded, res)

	res, err = child.Check("/root/ignored-other")
	assert.NoError(t, err)
	assert.Equal(t, Included, res)
}

func TestMatcher_AddGlobsAnchorsEach(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.AddGlobs([]string{"*.go", "!main.go"}, "/root"))
	assert.NoError(t, m.Finalize())

	ok, _ := m.Contains("/root/app.go")
	assert.True(t, ok)

	res, _ := m.Check("/root/main.go")
	assert.Equal(t, Excluded, res)
}

func TestMatcher_AddAnchoredRequiresAnchor(t *testing.T) {
	m := NewMatcher()
	err := m.AddAnchored("*.go", "")
	assert.ErrorIs(t, err, ErrAnchorMissing)
}

func TestMatcher_EmptyPatternRejected(t *testing.T) {
	m := NewMatcher()
	assert.ErrorIs(t, m.Add(""), ErrInvalidPattern)
	assert.ErrorIs(t, m.Add("!"), ErrInvalidPattern)
}

func TestMatcher_GlobstarAtRootMatchesEverything(t *testing.T) {
	m := NewMatcher()
	assert.NoError(t, m.AddAnchored("**", "/"))
	assert.NoError(t, m.Finalize())

	for _, p := range []string{"/a", "/a/b/c", "/"} {
		ok, err := m.Contains(p)
		assert.NoError(t, err)
		assert.True(t, ok, "expected %s contained", p)
	}
}
