package glob

import "strings"

// Polarity is whether a pattern includes or excludes the paths it
// matches.
type Polarity int

const (
	Include Polarity = iota
	Exclude
)

func (p Polarity) String() string {
	if p == Exclude {
		return "exclude"
	}
	return "include"
}

// PathCheckResult is the outcome of checking a path against a Matcher.
type PathCheckResult int

const (
	Unknown PathCheckResult = iota
	Included
	Excluded
)

func (r PathCheckResult) String() string {
	switch r {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}

type taggedSet struct {
	set      *GlobSet
	polarity Polarity
}

// Matcher is an ordered stack of polarity-tagged GlobSets, with
// optional delegation to a parent Matcher for paths none of its own
// GlobSets decide, per spec.md §4.4. The zero value is an empty Matcher
// with no parent, the same as NewMatcher returns.
type Matcher struct {
	sets   []taggedSet
	parent *Matcher
}

// NewMatcher returns an empty Matcher with no parent.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// NewMatcherWithParent returns an empty Matcher that delegates to
// parent for paths none of its own GlobSets decide.
func NewMatcherWithParent(parent *Matcher) *Matcher {
	return &Matcher{parent: parent}
}

// Add adds one pattern to the matcher. A leading "!" marks the pattern
// Exclude; otherwise it is Include. If the current last GlobSet has the
// same polarity, the pattern joins it; otherwise the last GlobSet is
// finalized and a new same-polarity GlobSet is started.
func (m *Matcher) Add(pattern string) error {
	if pattern == "" {
		return ErrInvalidPattern
	}

	polarity := Include
	body := pattern
	if pattern[0] == '!' {
		polarity = Exclude
		body = pattern[1:]
	}
	if body == "" {
		return ErrInvalidPattern
	}

	return m.addToPolarity(body, polarity)
}

// AddAnchored anchors pattern at anchorDir (per spec.md §4.2, via
// Anchor) before adding it. anchorDir must be nonempty; a missing
// anchor fails with ErrAnchorMissing.
func (m *Matcher) AddAnchored(pattern, anchorDir string) error {
	if anchorDir == "" {
		return ErrAnchorMissing
	}
	full, err := Anchor(pattern, anchorDir)
	if err != nil {
		return err
	}
	return m.Add(full)
}

// AddGlobs adds every pattern in globs, anchoring each at anchorDir.
// This mirrors the original implementation's batch needle-matcher
// constructor (spec.md §4.7's "builds the needle Matcher by anchoring
// each needle...").
func (m *Matcher) AddGlobs(globs []string, anchorDir string) error {
	for _, g := range globs {
		if err := m.AddAnchored(g, anchorDir); err != nil {
			return err
		}
	}
	return nil
}

func (m *Matcher) addToPolarity(body string, polarity Polarity) error {
	if len(m.sets) == 0 || m.sets[len(m.sets)-1].polarity != polarity {
		if len(m.sets) > 0 {
			if err := m.sets[len(m.sets)-1].set.Finalize(); err != nil {
				return err
			}
		}
		m.sets = append(m.sets, taggedSet{set: NewGlobSet(), polarity: polarity})
	}
	return m.sets[len(m.sets)-1].set.Add(body)
}

// Finalize finalizes the last (unfinalized) GlobSet, if any.
func (m *Matcher) Finalize() error {
	if len(m.sets) == 0 {
		return nil
	}
	return m.sets[len(m.sets)-1].set.Finalize()
}

// Ready reports whether every GlobSet in the matcher is finalized.
func (m *Matcher) Ready() bool {
	if len(m.sets) == 0 {
		return true
	}
	return m.sets[len(m.sets)-1].set.Finalized()
}

// Check evaluates path against the matcher's GlobSets from most
// recently added to least, returning the polarity of the first GlobSet
// that contains path. If none does and a parent matcher is present,
// Check delegates to the parent. Otherwise it returns Unknown.
//
// Check fails with ErrNotReady if any GlobSet is unfinalized, or
// ErrRelativePath if path is nonempty and does not start with "/".
func (m *Matcher) Check(path string) (PathCheckResult, error) {
	if !m.Ready() {
		return Unknown, ErrNotReady
	}
	if path == "" {
		return Unknown, nil
	}
	if !strings.HasPrefix(path, "/") {
		return Unknown, ErrRelativePath
	}

	for i := len(m.sets) - 1; i >= 0; i-- {
		ok, err := m.sets[i].set.Contains(path)
		if err != nil {
			return Unknown, err
		}
		if ok {
			if m.sets[i].polarity == Include {
				return Included, nil
			}
			return Excluded, nil
		}
	}

	if m.parent != nil {
		return m.parent.Check(path)
	}
	return Unknown, nil
}

// Contains reports whether Check(path) == Included.
func (m *Matcher) Contains(path string) (bool, error) {
	res, err := m.Check(path)
	if err != nil {
		return false, err
	}
	return res == Included, nil
}
