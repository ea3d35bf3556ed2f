package traverse

import (
	"github.com/globstari-go/globstari/internal/filetree"
	"github.com/globstari-go/globstari/internal/glob"
)

// Status is the control code a Callback returns for a dispatched entry
// (spec.md §4.7, §6). Pop is the original implementation's unused
// stubbed-out status (spec.md §9, "Open questions": "do not implement
// unless a test requires it") and is deliberately not represented here.
type Status int

const (
	// Continue descends into the entry if it is a directory; has no
	// effect on a file.
	Continue Status = iota
	// Skip suppresses descent into the entry's directory; has no
	// effect on a file.
	Skip
	// Stop terminates the traversal cleanly; no further entries are
	// dispatched.
	Stop
)

func (s Status) String() string {
	switch s {
	case Skip:
		return "skip"
	case Stop:
		return "stop"
	default:
		return "continue"
	}
}

// WorkItem pairs an Entry with the ignore Matcher active for its
// directory (spec.md §3). The ignore matcher is never nil, though it
// may be empty.
type WorkItem struct {
	Entry         filetree.Entry
	IgnoreMatcher *glob.Matcher
}

// Callback is invoked for each entry Included by the needle matcher and
// not ignore-matched. Its return Status drives descent (spec.md §6).
type Callback func(entry filetree.Entry) Status

// IgnoreHook, if set, is invoked for every entry suppressed by the
// active ignore matcher (spec.md §6, "an additional optional hook"). The
// ignore check runs before the needle matcher is consulted, so the hook
// also sees ignored entries that the needles would not have included. It
// cannot influence control flow.
type IgnoreHook func(entry filetree.Entry)
