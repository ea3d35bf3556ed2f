package glob

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// criteria is one compiled matching unit: either the combined regex for
// every range-free pattern in the set, or a standalone regex for a
// single range-bearing pattern plus its range constraints.
type criteria struct {
	re     *regexp.Regexp
	ranges []rangePair
}

// GlobSet aggregates many same-polarity glob patterns into a single
// combined regex (for patterns without numeric ranges) plus one
// standalone regex per range-bearing pattern, per spec.md §4.3.
//
// A GlobSet is not safe for concurrent use during its construction
// phase (Add/Finalize); once finalized, Contains is safe for concurrent
// readers since no further mutation occurs.
type GlobSet struct {
	patterns  map[string]struct{}
	criteria  []criteria
	finalized bool
}

// NewGlobSet returns an empty, unfinalized GlobSet.
func NewGlobSet() *GlobSet {
	return &GlobSet{patterns: make(map[string]struct{})}
}

// Add adds one already-anchored glob pattern to the set. Duplicates are
// silently absorbed. Add fails with ErrInvalidPattern for an empty
// pattern, or ErrAlreadyFinalized if the set has been finalized.
func (g *GlobSet) Add(pattern string) error {
	if pattern == "" {
		return ErrInvalidPattern
	}
	if g.finalized {
		return ErrAlreadyFinalized
	}
	g.patterns[pattern] = struct{}{}
	return nil
}

// Finalized reports whether Finalize has been called.
func (g *GlobSet) Finalized() bool {
	return g.finalized
}

// Finalize compiles the combined regex (for range-free patterns) and
// the standalone regexes (one per range-bearing pattern). Calling
// Finalize on a GlobSet with no patterns is legal and yields a set that
// matches nothing. Finalize fails with ErrCompile if the assembled
// regex source cannot be compiled by Go's regexp package.
func (g *GlobSet) Finalize() error {
	if g.finalized {
		return nil
	}

	var nonRange []string
	for pattern := range g.patterns {
		src, ranges, err := compilePattern(pattern)
		if err != nil {
			return err
		}

		if len(ranges) == 0 {
			// Go's regexp (RE2) has no atomic groups or the "(*FAIL)"
			// verb the original PCRE2-based compiler relies on to make
			// a trailing "|" legal; RE2 never backtracks, so plain
			// non-capturing groups are equivalent (spec.md §9).
			nonRange = append(nonRange, "(?:"+src+")")
			continue
		}

		re, err := regexp.Compile("^(?:" + src + ")$")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCompile, err)
		}
		g.criteria = append([]criteria{{re: re, ranges: ranges}}, g.criteria...)
	}

	if len(nonRange) > 0 {
		combined := "^(?:" + strings.Join(nonRange, "|") + ")$"
		re, err := regexp.Compile(combined)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCompile, err)
		}
		// Checked first: it disposes of the (usually more numerous)
		// range-free patterns in a single regex match.
		g.criteria = append([]criteria{{re: re}}, g.criteria...)
	}

	g.finalized = true
	return nil
}

// Contains reports whether path matches at least one pattern in the
// set. It returns false for the empty string. Contains fails with
// ErrNotFinalized if called before Finalize.
func (g *GlobSet) Contains(path string) (bool, error) {
	if !g.finalized {
		return false, ErrNotFinalized
	}
	if path == "" {
		return false, nil
	}

	for _, cr := range g.criteria {
		if cr.accepts(path) {
			return true, nil
		}
	}
	return false, nil
}

// accepts reports whether path matches cr's regex and, for a
// range-bearing criteria, whether every numeric capture lies within its
// declared [lo, hi] bound without a leading zero.
func (cr criteria) accepts(path string) bool {
	loc := cr.re.FindStringSubmatchIndex(path)
	if loc == nil {
		return false
	}

	// loc[0], loc[1] are the whole-match bounds. A zero-width match at
	// this point would mean the assembled regex itself is malformed
	// (spec.md §9, open question 2) -- that is a bug in this package,
	// not a caller mistake.
	if loc[1]-loc[0] == 0 {
		panic("glob: zero-length successful match -- invariant violation in assembled regex")
	}

	for i, rp := range cr.ranges {
		groupIdx := i + 1
		start, end := loc[2*groupIdx], loc[2*groupIdx+1]
		if start == -1 || end == -1 {
			// This capturing group did not participate in the match;
			// skip it rather than failing the check (spec.md §4.3).
			continue
		}

		substr := path[start:end]
		digits := substr
		if digits[0] == '+' || digits[0] == '-' {
			digits = digits[1:]
		}
		if digits[0] == '0' {
			return false
		}

		num, err := strconv.ParseInt(substr, 10, 64)
		if err != nil {
			return false
		}
		if num < rp.lo || num > rp.hi {
			return false
		}
	}

	return true
}
