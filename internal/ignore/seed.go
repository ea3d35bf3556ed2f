package ignore

import (
	"github.com/globstari-go/globstari/internal/glob"
	"github.com/globstari-go/globstari/internal/obslog"
)

// SeedOption configures NewSeedMatcher, mirroring the functional-options
// style of bethropolis-dir-dumper's internal/ignore.Option.
type SeedOption func(*seedConfig)

type seedConfig struct {
	ignoreHidden bool
	ignoreGit    bool
	customRules  []string
	logger       obslog.Logger
}

// WithHiddenIgnore enables or disables the default "ignore dotfiles and
// dot-directories at any depth" rule.
func WithHiddenIgnore(enabled bool) SeedOption {
	return func(c *seedConfig) { c.ignoreHidden = enabled }
}

// WithGitIgnore enables or disables the default "ignore .git
// directories" rule.
func WithGitIgnore(enabled bool) SeedOption {
	return func(c *seedConfig) { c.ignoreGit = enabled }
}

// WithCustomRules adds extra EditorConfig-dialect patterns (as if they
// came from an ignore file at the matcher's root) ahead of any
// directory-local ignore files discovered during traversal.
func WithCustomRules(patterns []string) SeedOption {
	return func(c *seedConfig) { c.customRules = patterns }
}

// WithLogger sets the logger used while building the seed matcher.
func WithLogger(logger obslog.Logger) SeedOption {
	return func(c *seedConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewSeedMatcher builds the root ignore Matcher a traversal starts with,
// anchored at rootDir, before any directory-local ignore files are
// loaded. It has no parent; it is meant to be passed as the traversal
// engine's base ignore matcher so every directory's ignore matcher
// delegates to it.
func NewSeedMatcher(rootDir string, opts ...SeedOption) (*glob.Matcher, error) {
	cfg := seedConfig{
		ignoreHidden: true,
		ignoreGit:    true,
		logger:       obslog.NoopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := glob.NewMatcher()

	if cfg.ignoreHidden {
		cfg.logger.Debug("ignore.NewSeedMatcher: seeding hidden-file rule at %s", rootDir)
		if err := m.AddAnchored(".*", rootDir); err != nil {
			return nil, err
		}
	}
	if cfg.ignoreGit {
		cfg.logger.Debug("ignore.NewSeedMatcher: seeding .git rule at %s", rootDir)
		if err := m.AddAnchored(".git", rootDir); err != nil {
			return nil, err
		}
	}
	for _, pattern := range cfg.customRules {
		cfg.logger.Debug("ignore.NewSeedMatcher: seeding custom rule %q at %s", pattern, rootDir)
		if err := m.AddAnchored(pattern, rootDir); err != nil {
			return nil, err
		}
	}

	if err := m.Finalize(); err != nil {
		return nil, err
	}
	return m, nil
}
