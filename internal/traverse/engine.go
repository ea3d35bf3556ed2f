// Package traverse implements the breadth-first directory-traversal
// engine (spec.md §4.7): a FIFO work queue seeded at a canonical base
// path, per-directory ignore-file loading with parent delegation,
// canonical-path dedup, depth limiting, and dispatch to a user callback
// with Continue/Skip/Stop control. It performs no I/O of its own; all
// I/O is delegated to a filetree.Tree.
package traverse

import (
	"fmt"
	"strings"

	"github.com/globstari-go/globstari/internal/filetree"
	"github.com/globstari-go/globstari/internal/glob"
	"github.com/globstari-go/globstari/internal/ignore"
	"github.com/globstari-go/globstari/internal/obslog"
)

// Option configures a Traversal at construction time.
type Option func(*Traversal)

// WithIgnoreHook sets the optional hook notified of entries suppressed
// by an ignore matcher (spec.md §6). It cannot affect control flow.
func WithIgnoreHook(hook IgnoreHook) Option {
	return func(t *Traversal) { t.ignoreHook = hook }
}

// WithLogger sets the logger used for trace-level traversal decisions
// (SPEC_FULL.md supplemented feature: trace logging at traversal
// decision points, emitted through obslog's Trace method).
func WithLogger(logger obslog.Logger) Option {
	return func(t *Traversal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithRootIgnoreParent sets the parent delegate for the root work
// item's (otherwise empty) ignore matcher. The CLI uses this to wire in
// the ambient hidden-file/".git" seed matcher built by
// ignore.NewSeedMatcher without changing the core per-traversal
// semantics, which start with an empty ignore matcher (spec.md §4.7).
func WithRootIgnoreParent(parent *glob.Matcher) Option {
	return func(t *Traversal) { t.rootIgnoreParent = parent }
}

// Traversal is a single-shot breadth-first walk of a filetree.Tree. A
// Traversal is not reusable; construct a fresh one per call (spec.md
// §4.7, "Single use").
type Traversal struct {
	tree          filetree.Tree
	basePath      string
	needleMatcher *glob.Matcher
	maxDepth      int
	callback      Callback

	ignoreHook       IgnoreHook
	logger           obslog.Logger
	rootIgnoreParent *glob.Matcher

	ran  bool
	seen map[string]struct{}
}

// New constructs a Traversal rooted at basePath, searching for needles
// (EditorConfig globs, anchored at the canonical form of basePath), up
// to maxDepth directory levels deep (0 means "only basePath's direct
// children"; negative means unlimited). callback is invoked for every
// entry the needle matcher includes and no active ignore matcher
// suppresses.
//
// needles must be non-empty (ErrInvalidArgs). basePath must
// canonicalize to an existing path (ErrNoSuchBase).
func New(tree filetree.Tree, basePath string, needles []string, maxDepth int, callback Callback, opts ...Option) (*Traversal, error) {
	if len(needles) == 0 {
		return nil, ErrInvalidArgs
	}

	canonicalBase, err := tree.Canonicalize(basePath)
	if err != nil {
		return nil, fmt.Errorf("traverse: canonicalize base path %q: %w", basePath, err)
	}
	if canonicalBase == "" {
		return nil, ErrNoSuchBase
	}

	needleMatcher := glob.NewMatcher()
	if err := needleMatcher.AddGlobs(needles, canonicalBase); err != nil {
		return nil, fmt.Errorf("traverse: building needle matcher: %w", err)
	}
	if err := needleMatcher.Finalize(); err != nil {
		return nil, fmt.Errorf("traverse: finalizing needle matcher: %w", err)
	}

	t := &Traversal{
		tree:          tree,
		basePath:      canonicalBase,
		needleMatcher: needleMatcher,
		maxDepth:      maxDepth,
		callback:      callback,
		logger:        obslog.NoopLogger{},
		seen:          make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Run executes the traversal loop to completion (or until the callback
// returns Stop). It fails with ErrAlreadyRun if called more than once.
func (t *Traversal) Run() error {
	if t.ran {
		return ErrAlreadyRun
	}
	t.ran = true

	rootIgnore := glob.NewMatcherWithParent(t.rootIgnoreParent)
	if err := rootIgnore.Finalize(); err != nil {
		return err
	}

	queue := []WorkItem{{
		Entry: filetree.Entry{
			Type:          filetree.Directory,
			CanonicalPath: t.basePath,
			Depth:         0,
		},
		IgnoreMatcher: rootIgnore,
	}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		path := item.Entry.CanonicalPath
		if _, dup := t.seen[path]; dup {
			t.logger.Trace("traverse: %s already seen, dropping", path)
			continue
		}
		t.seen[path] = struct{}{}

		ignored, err := item.IgnoreMatcher.Contains(path)
		if err != nil {
			return fmt.Errorf("traverse: checking ignore matcher for %q: %w", path, err)
		}
		if ignored {
			t.logger.Trace("traverse: %s ignore-matched", path)
			if t.ignoreHook != nil {
				t.ignoreHook(item.Entry)
			}
			continue
		}

		result, err := t.needleMatcher.Check(path)
		if err != nil {
			return fmt.Errorf("traverse: checking needle matcher for %q: %w", path, err)
		}

		var descend bool
		switch {
		case result == glob.Excluded:
			t.logger.Trace("traverse: %s excluded by needle matcher", path)
			continue
		case result == glob.Included:
			status := t.callback(item.Entry)
			t.logger.Trace("traverse: %s dispatched, callback returned %s", path, status)
			switch status {
			case Stop:
				return nil
			case Skip:
				descend = false
			default:
				descend = true
			}
		case item.Entry.Type == filetree.Directory:
			descend = true
		default:
			continue
		}

		// maxDepth counts descend steps permitted from the base
		// directory, not a cap on dispatched entries' own depth: at
		// maxDepth == 0 the base directory is still expanded once (so
		// its direct children, at depth 1, are dispatched), but those
		// children are never themselves expanded (spec.md §8,
		// "maxDepth = 0 ⇒ only the start directory's direct children
		// are dispatched; no descent into subdirectories").
		withinDepth := t.maxDepth < 0 || item.Entry.Depth <= t.maxDepth
		if descend && item.Entry.Type == filetree.Directory && !withinDepth {
			t.logger.Trace("traverse: %s at depth %d exceeds maxDepth %d, not descending", path, item.Entry.Depth, t.maxDepth)
		}
		if descend && item.Entry.Type == filetree.Directory && withinDepth {
			children, err := t.loadDir(item.Entry, item.IgnoreMatcher)
			if err != nil {
				return err
			}
			queue = append(queue, children...)
		}
	}
	return nil
}

// loadDir reads entry's ignore-file candidates into a fresh child
// Matcher delegating to parentIgnores, reads its children from the
// tree, and returns them as WorkItems carrying that child matcher
// (spec.md §4.7, loadDir).
func (t *Traversal) loadDir(entry filetree.Entry, parentIgnores *glob.Matcher) ([]WorkItem, error) {
	dirPath := entry.CanonicalPath
	childIgnores := glob.NewMatcherWithParent(parentIgnores)

	for _, candidate := range t.tree.IgnoreCandidatesFor(dirPath) {
		resolved := candidate
		if !strings.HasPrefix(resolved, "/") {
			resolved = dirPath + "/" + resolved
		}

		canonical, err := t.tree.Canonicalize(resolved)
		if err != nil || canonical == "" {
			continue
		}

		contents, err := t.tree.ReadFile(canonical)
		if err != nil {
			continue
		}

		if err := ignore.ParseLines(contents, dirPath+"/", childIgnores); err != nil {
			return nil, fmt.Errorf("traverse: loading ignore file %q: %w", canonical, err)
		}
	}

	if err := childIgnores.Finalize(); err != nil {
		return nil, fmt.Errorf("traverse: finalizing ignore matcher for %q: %w", dirPath, err)
	}

	children, err := t.tree.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("traverse: reading dir %q: %w", dirPath, err)
	}

	items := make([]WorkItem, 0, len(children))
	for _, child := range children {
		child.Depth = entry.Depth + 1
		items = append(items, WorkItem{Entry: child, IgnoreMatcher: childIgnores})
	}
	return items, nil
}
