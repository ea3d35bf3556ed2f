// Package app wires the globstari engine's packages together into the
// CLI application, generalized from bethropolis-dir-dumper/internal/app:
// the teacher wired a gitignore-backed matcher and a concurrent
// filepath.WalkDir walker into a content-dumping printer; this wires
// internal/glob, internal/ignore, internal/filetree, and
// internal/traverse into the same printer, replacing the walk with the
// breadth-first Traversal Engine (spec.md §4.7).
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/globstari-go/globstari/internal/config"
	"github.com/globstari-go/globstari/internal/filetree"
	"github.com/globstari-go/globstari/internal/ignore"
	"github.com/globstari-go/globstari/internal/logger"
	"github.com/globstari-go/globstari/internal/printer"
	"github.com/globstari-go/globstari/internal/summary"
	"github.com/globstari-go/globstari/internal/traverse"
)

// App encapsulates the main application functionality.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		output = file
	}

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log, Output: output}
}

// Run executes the main application logic: compile the needle globs,
// seed an ignore matcher, and hand both to a Traversal, printing every
// dispatched entry.
func (a *App) Run() {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("globstari version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	if len(a.cfg.Needles) == 0 {
		a.log.Error("At least one needle glob is required.")
		os.Exit(1)
	}

	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Verbose mode enabled")
	a.log.Debug("Root dir: %s", a.cfg.RootDir)
	a.log.Debug("Needles: %v", a.cfg.Needles)
	a.log.Debug("Max depth: %d", a.cfg.MaxDepth)

	tree := filetree.NewDisk()
	if names := splitCSV(a.cfg.IgnoreNames); len(names) > 0 {
		tree.IgnoreFileNames = names
	}

	var customPatterns []string
	if a.cfg.CustomIgnore != "" {
		customPatterns = splitCSV(a.cfg.CustomIgnore)
		infoLog("Using custom seed ignore patterns: %v", customPatterns)
	}

	seedOpts := []ignore.SeedOption{
		ignore.WithLogger(a.log),
		ignore.WithHiddenIgnore(a.cfg.IgnoreHidden),
		ignore.WithGitIgnore(a.cfg.IgnoreGit),
	}
	if len(customPatterns) > 0 {
		seedOpts = append(seedOpts, ignore.WithCustomRules(customPatterns))
	}

	canonicalRoot, err := tree.Canonicalize(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path %q: %v", a.cfg.RootDir, err)
		os.Exit(1)
	}
	if canonicalRoot == "" {
		a.log.Error("Root directory %q not found.", a.cfg.RootDir)
		os.Exit(1)
	}

	seedMatcher, err := ignore.NewSeedMatcher(canonicalRoot, seedOpts...)
	if err != nil {
		a.log.Error("Error initializing seed ignore rules: %v", err)
		os.Exit(1)
	}

	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors)
	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true)
		p.WithColors(false)
	} else if a.cfg.MarkdownOutput {
		a.log.Debug("Markdown output mode enabled")
		p.WithMarkdown(true)
		p.WithColors(false)
	}

	ignoredTracker := summary.NewIgnoredTracker()

	callback := func(entry filetree.Entry) traverse.Status {
		switch entry.Type {
		case filetree.Directory:
			a.log.Debug("Traversal dispatched directory: %s", entry.CanonicalPath)
			p.PrintDir(entry.CanonicalPath)
		default:
			content, err := tree.ReadFile(entry.CanonicalPath)
			if err != nil {
				a.log.Warn("Skipping file %q due to read error: %v", entry.CanonicalPath, err)
				return traverse.Continue
			}
			a.log.Debug("Traversal dispatched file: %s (%d bytes)", entry.CanonicalPath, len(content))
			p.PrintFile(entry.CanonicalPath, content)
		}
		return traverse.Continue
	}

	t, err := traverse.New(tree, canonicalRoot, a.cfg.Needles, a.cfg.MaxDepth, callback,
		traverse.WithLogger(a.log),
		traverse.WithRootIgnoreParent(seedMatcher),
		traverse.WithIgnoreHook(ignoredTracker.Track),
	)
	if err != nil {
		a.log.Error("Error constructing traversal: %v", err)
		os.Exit(1)
	}

	infoLog("Traversing directory: %s", canonicalRoot)
	if err := t.Run(); err != nil {
		a.log.Error("Critical error during traversal: %v", err)
		os.Exit(1)
	}

	p.Finalize()

	duration := time.Since(startTime)
	summary.DisplayResults(a.log, p.GetCount(), duration, a.cfg.Quiet)

	if a.cfg.ShowIgnored {
		summary.DisplayIgnoredItems(a.log, ignoredTracker.Items(), os.Stderr, a.cfg.Quiet)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
