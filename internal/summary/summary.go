// Package summary handles display of traversal results and statistics,
// generalized from bethropolis-dir-dumper/internal/summary: the
// teacher's SkippedItem/SkippedTracker (populated by the old concurrent
// walker, guarded by a mutex) becomes IgnoredItem/IgnoredTracker,
// populated by the traversal engine's IgnoreHook (spec.md §6), which is
// always called from the single traversal goroutine, so no mutex is
// needed (spec.md §5, "no lock discipline is required").
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/globstari-go/globstari/internal/filetree"
)

// Logger defines the minimal logging interface required.
type Logger interface {
	Info(format string, args ...interface{})
}

// IgnoredItem records one entry suppressed by an ignore matcher.
type IgnoredItem struct {
	Path  string
	IsDir bool
}

// IgnoredTracker accumulates IgnoredItems as a traverse.IgnoreHook.
type IgnoredTracker struct {
	items []IgnoredItem
}

// NewIgnoredTracker returns an empty IgnoredTracker.
func NewIgnoredTracker() *IgnoredTracker {
	return &IgnoredTracker{}
}

// Track is a traverse.IgnoreHook: it appends entry to the tracker.
func (t *IgnoredTracker) Track(entry filetree.Entry) {
	t.items = append(t.items, IgnoredItem{
		Path:  entry.CanonicalPath,
		IsDir: entry.Type == filetree.Directory,
	})
}

// Items returns the tracked ignored entries.
func (t *IgnoredTracker) Items() []IgnoredItem {
	return t.items
}

// DisplayResults shows the end results of a traversal.
func DisplayResults(logger Logger, dispatchCount int64, duration time.Duration, quiet bool) {
	if !quiet {
		logger.Info("Dispatched %d entries.", dispatchCount)
		logger.Info("Traversal complete in %v.", duration.Round(time.Millisecond))
	}
}

// DisplayIgnoredItems formats and prints the entries an ignore matcher
// suppressed.
func DisplayIgnoredItems(logger Logger, items []IgnoredItem, output io.Writer, quiet bool) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Ignored Items (%d) ---", len(items))
	if len(items) > 0 {
		sort.Slice(items, func(i, j int) bool {
			return items[i].Path < items[j].Path
		})
		for _, item := range items {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR "
			}
			fmt.Fprintf(output, "Ignored %s: %s\n", typeStr, item.Path)
		}
	} else {
		infoLog("No items were ignored.")
	}
	infoLog("--- End Ignored Items ---")
}
