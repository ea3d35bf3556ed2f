package filetree

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMem_ReadDirListsChildren(t *testing.T) {
	tree := NewMem(map[string]string{
		"/root/file":         "",
		"/root/ignored":      "",
		"/root/ignored-also": "",
	})

	entries, err := tree.ReadDir("/root")
	assert.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.CanonicalPath)
	}
	sort.Strings(paths)

	want := []string{"/root/file", "/root/ignored", "/root/ignored-also"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("unexpected children (-want +got):\n%s", diff)
	}
}

func TestMem_ImplicitIntermediateDirectories(t *testing.T) {
	tree := NewMem(map[string]string{"/a/b/c/file.txt": "hi"})

	entries, err := tree.ReadDir("/a/b/c")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, File, entries[0].Type)

	entries, err = tree.ReadDir("/a/b")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, Directory, entries[0].Type)
}

func TestMem_ReadFile(t *testing.T) {
	tree := NewMem(map[string]string{"/root/a.txt": "hello"})
	content, err := tree.ReadFile("/root/a.txt")
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestMem_CanonicalizeUnknownPathReturnsEmpty(t *testing.T) {
	tree := NewMem(nil)
	canon, err := tree.Canonicalize("/does/not/exist")
	assert.NoError(t, err)
	assert.Equal(t, "", canon)
}

func TestMem_CanonicalizeNormalizesDotComponents(t *testing.T) {
	tree := NewMem(map[string]string{"/root/file": ""})
	canon, err := tree.Canonicalize("/root/./sub/../file")
	assert.NoError(t, err)
	assert.Equal(t, "/root/file", canon)
}

func TestMem_IgnoreCandidatesDefaultsToEignore(t *testing.T) {
	tree := NewMem(nil)
	assert.Equal(t, []string{".eignore"}, tree.IgnoreCandidatesFor("/root"))
}

func TestMem_WithIgnoreFileNamesOverride(t *testing.T) {
	tree := NewMem(nil).WithIgnoreFileNames(".myignore", ".other")
	assert.Equal(t, []string{".myignore", ".other"}, tree.IgnoreCandidatesFor("/root"))
}

func TestMem_MkdirCreatesEmptyDirectory(t *testing.T) {
	tree := NewMem(nil)
	tree.Mkdir("/root/empty")

	entries, err := tree.ReadDir("/root/empty")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
