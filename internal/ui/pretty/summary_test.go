package pretty

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdslim/pkg/runner"
	"github.com/yaklabco/mdslim/pkg/slim"
)

func testStats() runner.Stats {
	return runner.Stats{
		FilesDiscovered: 3,
		FilesProcessed:  2,
		FilesErrored:    1,
		FilesWritten:    2,
		BytesIn:         2048,
		BytesOut:        1024,
		CodeBlocks:      4,
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	got := s.FormatSummaryOneLine(testStats())

	assert.Contains(t, got, "2 files slimmed")
	assert.Contains(t, got, "2.0 KiB -> 1.0 KiB")
	assert.Contains(t, got, "50.0% smaller")
	assert.Contains(t, got, "1 error")
}

func TestFormatSummaryOneLine_NoFiles(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	got := s.FormatSummaryOneLine(runner.Stats{})

	assert.Contains(t, got, "No Markdown files found")
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	got := s.FormatSummary(testStats())

	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "Files discovered:  3")
	assert.Contains(t, got, "Files errored:     1")
	assert.Contains(t, got, "Reduction:         50.0%")
	assert.Contains(t, got, "Completed with errors")
}

func TestFormatSummary_Clean(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	stats := testStats()
	stats.FilesErrored = 0
	got := s.FormatSummary(stats)

	assert.Contains(t, got, "Done")
	assert.NotContains(t, got, "errored")
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.n))
	}
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/a.md",
				Result: &slim.FileResult{
					Path: "/work/a.md", BytesIn: 1000, BytesOut: 600,
				},
			},
			{
				Path:  "/work/b.md",
				Error: errors.New("permission denied"),
			},
		},
	}

	f := NewTableFormatter(NewStyles(false), 80)
	got := f.FormatTable(result, "/work")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, got, "a.md")
	assert.Contains(t, got, "40.0%")
	assert.Contains(t, got, "permission denied")
}

func TestFormatTable_Empty(t *testing.T) {
	t.Parallel()

	f := NewTableFormatter(NewStyles(false), 80)
	assert.Empty(t, f.FormatTable(&runner.Result{}, ""))
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"always", "always", true},
		{"never", "never", false},
		{"auto with non-tty writer", "auto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorEnabled(tt.mode, &bytes.Buffer{}))
		})
	}
}
