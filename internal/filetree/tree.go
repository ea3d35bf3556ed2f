package filetree

// Tree is the capability set the traversal engine requires of any
// backing file hierarchy (spec.md §4.6). Implementations: Disk (real
// filesystem) and Mem (in-memory, for tests).
type Tree interface {
	// ReadDir returns the direct children of dirPath. It excludes "."
	// and "..". Depth may be left unset; the traversal engine fills it
	// in. Unreadable directories surface their error.
	ReadDir(dirPath string) ([]Entry, error)

	// ReadFile returns the full content of path. Any failure is
	// surfaced; callers that want to treat a missing file as "no
	// content" must catch it themselves.
	ReadFile(path string) ([]byte, error)

	// Canonicalize returns the absolute, separator-normalized form of
	// path with no "." or ".." components. It returns "" (no error) if
	// path does not exist; it returns an error only for other I/O
	// failures.
	Canonicalize(path string) (string, error)

	// IgnoreCandidatesFor returns zero or more paths (absolute, or
	// relative to dirPath) to try reading as ignore files for dirPath.
	IgnoreCandidatesFor(dirPath string) []string
}
