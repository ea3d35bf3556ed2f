package filetree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Disk is a Tree backed by the real filesystem.
type Disk struct {
	// IgnoreFileNames overrides DefaultIgnoreFileNames when nonempty.
	IgnoreFileNames []string
}

// NewDisk returns a Disk adapter using the default ignore-file
// candidate name (".eignore").
func NewDisk() *Disk {
	return &Disk{}
}

// ReadDir returns the direct children of dirPath, classified as File or
// Directory, excluding "." and "..". Entries of neither type (sockets,
// devices, etc.) are skipped.
func (d *Disk) ReadDir(dirPath string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("filetree: read dir %q: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if name == "." || name == ".." {
			continue
		}

		var ty EntryType
		switch {
		case de.IsDir():
			ty = Directory
		case de.Type().IsRegular():
			ty = File
		default:
			// Symlinks, sockets, devices, etc. are not classified by
			// the core matcher/traversal; skip them (spec.md §6,
			// disk-adapter contract).
			continue
		}

		entries = append(entries, Entry{
			Type:          ty,
			CanonicalPath: filepath.ToSlash(filepath.Join(dirPath, name)),
		})
	}
	return entries, nil
}

// ReadFile returns the full content of path.
func (d *Disk) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("filetree: read file %q: %w", path, err)
	}
	return content, nil
}

// Canonicalize resolves path to its absolute, symlink-resolved,
// separator-normalized form. It returns "" if path does not exist.
func (d *Disk) Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("filetree: canonicalize %q: %w", path, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("filetree: canonicalize %q: %w", path, err)
	}
	return filepath.ToSlash(abs), nil
}

// IgnoreCandidatesFor returns the configured ignore-file candidate
// name(s), defaulting to ".eignore" (spec.md §4.6).
func (d *Disk) IgnoreCandidatesFor(dirPath string) []string {
	if len(d.IgnoreFileNames) > 0 {
		return d.IgnoreFileNames
	}
	return DefaultIgnoreFileNames
}
