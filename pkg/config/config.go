// Package config defines core configuration types for mdslim.
// These types are pure data structures with no dependency on the
// environment or flag loaders that populate them.
package config

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	// FormatText prints per-file progress and a styled summary.
	FormatText OutputFormat = "text"

	// FormatSummary prints only the summary block.
	FormatSummary OutputFormat = "summary"

	// FormatJSON emits a machine-readable run report.
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatSummary, FormatJSON:
		return true
	default:
		return false
	}
}

// Default source and destination roots.
const (
	DefaultSource = "."
	DefaultDest   = "slim"
)

// Config is the root configuration for an mdslim run.
type Config struct {
	// Source is the root directory scanned for Markdown files.
	Source string

	// Dest is the root directory the slimmed copies are written under.
	// The relative path of each source file is preserved beneath it.
	Dest string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) treated as Markdown. Empty means the defaults.
	Extensions []string

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// PreserveCode keeps fenced code blocks verbatim in the output.
	// When false, fenced blocks are dropped entirely for maximum
	// size reduction.
	PreserveCode bool

	// Format selects the output format for run results.
	Format OutputFormat
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Source:       DefaultSource,
		Dest:         DefaultDest,
		PreserveCode: true,
		Format:       FormatText,
	}
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// EffectiveExtensions returns the extensions to use, defaulting if empty.
func (c *Config) EffectiveExtensions() []string {
	if len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
