// Package ignore implements the ignore-file loader (spec.md §4.5) and a
// seed-matcher builder for the ambient hidden-file/".git" defaults the
// CLI offers, generalized from bethropolis-dir-dumper's
// internal/ignore package (which wired the same two concerns -
// hidden-file/".git" defaults plus custom rules - into a single
// functional-options matcher, there delegating to
// github.com/denormal/go-gitignore; here delegating to this module's
// own internal/glob.Matcher, per spec.md §1's requirement that the
// core never expose or delegate to an external regex/ignore engine).
package ignore

import (
	"strings"

	"github.com/globstari-go/globstari/internal/glob"
)

// ParseLines parses the text of an ignore file living in directory dir
// and adds every surviving pattern to m, anchored at dir (spec.md §4.5).
//
// Line processing: line terminators are "\n", tolerating a trailing
// "\r"; leading/trailing whitespace is trimmed; empty lines and lines
// whose first character is "#" are comments; otherwise the first
// unescaped "#" elsewhere in the line ends the pattern.
func ParseLines(contents []byte, dir string, m *glob.Matcher) error {
	for _, raw := range strings.Split(string(contents), "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		if line[0] == '#' {
			continue
		}

		line = strings.TrimSpace(truncateAtUnescapedHash(line))
		if line == "" {
			continue
		}

		if err := m.AddAnchored(line, dir); err != nil {
			return err
		}
	}
	return nil
}

// truncateAtUnescapedHash returns line up to (excluding) the first "#"
// not immediately preceded by a backslash, starting the search after
// the first character (which is known not to be "#" -- that case is a
// whole-line comment, handled by the caller).
func truncateAtUnescapedHash(line string) string {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && line[i-1] != '\\' {
			return line[:i]
		}
	}
	return line
}
