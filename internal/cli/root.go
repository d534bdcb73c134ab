// Package cli provides the Cobra command structure for mdslim.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslim/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdslim command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdslim",
		Short: "Shrink Markdown documentation for context-limited readers",
		Long: `mdslim rewrites a tree of Markdown files into size-reduced,
noise-stripped copies, preserving all fenced code blocks verbatim.

It strips emphasis markup, emojis, badge images, tables of contents,
YAML front matter, and trailing attribution footers, flattens tables
into bulleted lines, and simplifies links down to their visible text.
The result keeps the information-bearing content (code, headings,
link text) while cutting the formatting noise that wastes a
downstream reader's context window.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newSlimCommand())
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
