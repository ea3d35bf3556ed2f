package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings, generalized from
// bethropolis-dir-dumper/internal/config for the globstari engine: file
// extension filtering and concurrency options are gone (traversal is
// single-threaded per spec.md §5); needle globs, max depth, and
// ignore-file candidate overrides take their place.
type Config struct {
	// Search settings
	RootDir     string
	Needles     []string // positional args: EditorConfig-dialect globs
	MaxDepth    int
	IgnoreNames string // comma-separated ignore-file candidate names, default ".eignore"

	// Logging settings
	Verbose    bool
	Quiet      bool
	LogLevel   string
	NoColor    bool
	UseColors  bool
	OutputFile string

	// Filtering settings
	IgnoreHidden bool
	IgnoreGit    bool
	CustomIgnore string

	// Output format
	JSONOutput     bool
	MarkdownOutput bool
	ShowIgnored    bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags. Needle
// globs are taken from the positional arguments left after flag
// parsing.
func New() *Config {
	c := &Config{
		Version: "0.1.0",
	}

	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to traverse")
	flag.IntVar(&c.MaxDepth, "max-depth", -1, "Maximum directory depth to descend (-1 = unlimited, 0 = only dir's direct children)")
	flag.StringVar(&c.IgnoreNames, "ignore-file", ".eignore", "Comma-separated ignore-file candidate name(s) tried in every directory")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.IgnoreHidden, "hidden", true, "Seed-ignore hidden files/directories (starting with '.')")
	flag.BoolVar(&c.IgnoreGit, "git", true, "Seed-ignore .git directories")
	flag.StringVar(&c.CustomIgnore, "ignore", "", "Custom seed ignore patterns (comma-separated, EditorConfig-glob syntax)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.ShowIgnored, "show-ignored", false, "Show a list of ignore-matched entries at the end")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&c.JSONOutput, "json", false, "Output results in JSON format")
	flag.BoolVar(&c.MarkdownOutput, "markdown", false, "Output results in Markdown format")

	flag.Parse()
	c.Needles = flag.Args()

	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
