package glob

import "errors"

// Sentinel errors surfaced by the glob compiler, GlobSet, and Matcher.
// Callers should compare with errors.Is, not string equality.
var (
	// ErrInvalidPattern is returned when an empty pattern is added to a
	// GlobSet or Matcher.
	ErrInvalidPattern = errors.New("glob: invalid (empty) pattern")

	// ErrAlreadyFinalized is returned when a GlobSet is modified after
	// Finalize has been called.
	ErrAlreadyFinalized = errors.New("glob: already finalized")

	// ErrNotFinalized is returned when Contains is called on a GlobSet
	// before Finalize.
	ErrNotFinalized = errors.New("glob: not finalized")

	// ErrNotReady is returned when Check or Contains is called on a
	// Matcher whose last GlobSet has not been finalized.
	ErrNotReady = errors.New("glob: matcher not ready (call Finalize)")

	// ErrRelativePath is returned when Check or Contains is called with a
	// path that does not begin with "/".
	ErrRelativePath = errors.New("glob: path must be absolute")

	// ErrAnchorMissing is returned when AddAnchored is called with an
	// empty anchor directory.
	ErrAnchorMissing = errors.New("glob: anchor directory must not be empty")

	// ErrCompile wraps a failure to compile an assembled regular
	// expression. Seeing this indicates a bug in this package's own
	// regex assembly, not a caller mistake.
	ErrCompile = errors.New("glob: failed to compile pattern")
)
