package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdslim/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 files slimmed (482.1 KB -> 210.4 KB, 56.4% smaller), 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := fmt.Sprintf("%d %s slimmed (%s -> %s, %s smaller)",
		stats.FilesProcessed, fileWord,
		formatBytes(stats.BytesIn), formatBytes(stats.BytesOut),
		formatPercent(stats.Reduction()))
	parts := []string{s.Success.Render(msg)}

	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d up to date", stats.FilesUnchanged)))
	}
	if stats.FilesErrored > 0 {
		errWord := "errors"
		if stats.FilesErrored == 1 {
			errWord = "error"
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s", stats.FilesErrored, errWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files slimmed:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Up to date:        " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Bytes in:          " +
		s.SummaryValue.Render(formatBytes(stats.BytesIn)) + "\n")
	builder.WriteString("  Bytes out:         " +
		s.SummaryValue.Render(formatBytes(stats.BytesOut)) + "\n")
	builder.WriteString("  Reduction:         " +
		s.Reduction.Render(formatPercent(stats.Reduction())) + "\n")
	if stats.CodeBlocks > 0 {
		builder.WriteString("  Code blocks:       " +
			s.SummaryValue.Render(strconv.Itoa(stats.CodeBlocks)) + "\n")
	}

	builder.WriteString("\n")
	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Completed with errors"))
	} else {
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// formatPercent renders a fraction as a percentage with one decimal.
func formatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
