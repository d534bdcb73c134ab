package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdslim/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	sizeColumnWidth  = 22 // "482.1 KiB -> 210.4 KiB"
	pctColumnWidth   = 7
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats per-file outcomes as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter. A non-positive
// termWidth falls back to a sensible default.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// TermWidth returns the current width of the terminal attached to f,
// or 0 when f is not a terminal.
func TermWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// FormatTable renders one row per file: path, sizes, and reduction.
// Errored files show the error in place of sizes.
func (t *TableFormatter) FormatTable(result *runner.Result, workDir string) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	fileWidth := t.termWidth - sizeColumnWidth - pctColumnWidth - 2*tablePadding
	if fileWidth < minFileWidth {
		fileWidth = minFileWidth
	}

	var builder strings.Builder
	pad := strings.Repeat(" ", tablePadding)

	header := fmt.Sprintf("%-*s%s%-*s%s%*s",
		fileWidth, "FILE", pad, sizeColumnWidth, "SIZE", pad, pctColumnWidth, "SAVED")
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(
		strings.Repeat(heavySeparator, fileWidth+sizeColumnWidth+pctColumnWidth+2*tablePadding)))
	builder.WriteString("\n")

	for _, outcome := range result.Files {
		builder.WriteString(t.formatRow(outcome, workDir, fileWidth, pad))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (t *TableFormatter) formatRow(outcome runner.FileOutcome, workDir string, fileWidth int, pad string) string {
	path := displayPath(outcome.Path, workDir)
	if len(path) > fileWidth {
		path = "..." + path[len(path)-fileWidth+3:]
	}

	if outcome.Error != nil {
		return fmt.Sprintf("%s%s%s",
			t.styles.FilePath.Render(fmt.Sprintf("%-*s", fileWidth, path)),
			pad,
			t.styles.ErrorMsg.Render(outcome.Error.Error()))
	}
	if outcome.Result == nil {
		return t.styles.FilePath.Render(path)
	}

	res := outcome.Result
	size := fmt.Sprintf("%s -> %s", formatBytes(res.BytesIn), formatBytes(res.BytesOut))
	return fmt.Sprintf("%s%s%-*s%s%s",
		t.styles.FilePath.Render(fmt.Sprintf("%-*s", fileWidth, path)),
		pad,
		sizeColumnWidth, size,
		pad,
		t.styles.Reduction.Render(fmt.Sprintf("%*s", pctColumnWidth, formatPercent(res.Reduction()))))
}

func displayPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, workDir+string(os.PathSeparator)); ok {
		return rel
	}
	return path
}
