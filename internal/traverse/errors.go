package traverse

import "errors"

// Sentinel errors surfaced by the traversal engine (spec.md §7).
var (
	// ErrAlreadyRun is returned by Run when a Traversal has already been
	// run once. A Traversal is single-shot; construct a fresh one per
	// call.
	ErrAlreadyRun = errors.New("traverse: already run")

	// ErrInvalidArgs is returned by New when needles is empty: without
	// patterns the engine has no work semantics.
	ErrInvalidArgs = errors.New("traverse: needles must be non-empty")

	// ErrNoSuchBase is returned when basePath does not canonicalize to
	// any existing path.
	ErrNoSuchBase = errors.New("traverse: base path does not exist")
)
