package filetree

import (
	"fmt"
	"path"
	"sort"
)

// memNode is one path in an in-memory tree: either a directory, or a
// file with content.
type memNode struct {
	isDir   bool
	content []byte
}

// Mem is an in-memory Tree, for exercising the traversal engine's
// properties (spec.md §8) without touching disk. It is modeled on
// kform-dev-kform's pkg/fsys.NewMemFS(rootpath, fstest.MapFS) pattern: a
// virtual tree built from a flat map of path -> content, with
// intermediate directories implied automatically.
type Mem struct {
	nodes           map[string]memNode
	ignoreFileNames []string
}

// NewMem builds a Mem tree from a map of absolute slash-separated paths
// to file content. Every intermediate directory is created implicitly.
func NewMem(files map[string]string) *Mem {
	m := &Mem{nodes: map[string]memNode{"/": {isDir: true}}}
	for p, content := range files {
		m.put(p, content)
	}
	return m
}

// Mkdir ensures dirPath exists as a directory, even if it has no files
// under it (useful for ignore-delegation fixtures with empty
// subdirectories).
func (m *Mem) Mkdir(dirPath string) {
	p := normalizeVirtual(dirPath)
	m.ensureDirs(p)
	if _, ok := m.nodes[p]; !ok {
		m.nodes[p] = memNode{isDir: true}
	}
}

func (m *Mem) put(p, content string) {
	p = normalizeVirtual(p)
	m.nodes[p] = memNode{content: []byte(content)}
	m.ensureDirs(path.Dir(p))
}

func (m *Mem) ensureDirs(dir string) {
	for dir != "/" && dir != "." && dir != "" {
		if n, ok := m.nodes[dir]; ok && n.isDir {
			return
		}
		m.nodes[dir] = memNode{isDir: true}
		dir = path.Dir(dir)
	}
}

func normalizeVirtual(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

// WithIgnoreFileNames overrides the ignore-file candidate name(s)
// returned by IgnoreCandidatesFor.
func (m *Mem) WithIgnoreFileNames(names ...string) *Mem {
	m.ignoreFileNames = names
	return m
}

// ReadDir returns the direct children of dirPath in lexical order (Mem
// has no underlying readdir order to preserve; tests that care about
// traversal order sort disk-adapter results explicitly, per spec.md
// §5).
func (m *Mem) ReadDir(dirPath string) ([]Entry, error) {
	dirPath = normalizeVirtual(dirPath)
	node, ok := m.nodes[dirPath]
	if !ok || !node.isDir {
		return nil, fmt.Errorf("filetree: not a directory: %s", dirPath)
	}

	var names []string
	for p := range m.nodes {
		if p == dirPath {
			continue
		}
		if path.Dir(p) == dirPath {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, p := range names {
		ty := File
		if m.nodes[p].isDir {
			ty = Directory
		}
		entries = append(entries, Entry{Type: ty, CanonicalPath: p})
	}
	return entries, nil
}

// ReadFile returns the content of the file at path.
func (m *Mem) ReadFile(p string) ([]byte, error) {
	p = normalizeVirtual(p)
	node, ok := m.nodes[p]
	if !ok || node.isDir {
		return nil, fmt.Errorf("filetree: no such file: %s", p)
	}
	return node.content, nil
}

// Canonicalize normalizes path and returns it if known, or "" if not.
func (m *Mem) Canonicalize(p string) (string, error) {
	p = normalizeVirtual(p)
	if _, ok := m.nodes[p]; !ok {
		return "", nil
	}
	return p, nil
}

// IgnoreCandidatesFor returns the configured ignore-file candidate
// name(s), defaulting to ".eignore".
func (m *Mem) IgnoreCandidatesFor(dirPath string) []string {
	if len(m.ignoreFileNames) > 0 {
		return m.ignoreFileNames
	}
	return DefaultIgnoreFileNames
}
