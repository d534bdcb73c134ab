// Package analysis builds machine-readable reports from a slimming
// run, for CI consumption via the JSON output format.
package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/yaklabco/mdslim/pkg/runner"
	"github.com/yaklabco/mdslim/pkg/slim"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Report is the top-level run report.
type Report struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
	Dest        string    `json:"dest"`
	Totals      Totals    `json:"totals"`
	Files       []FileReport `json:"files"`
}

// Totals aggregates the run.
type Totals struct {
	FilesDiscovered int     `json:"files_discovered"`
	FilesProcessed  int     `json:"files_processed"`
	FilesErrored    int     `json:"files_errored"`
	FilesWritten    int     `json:"files_written"`
	BytesIn         int     `json:"bytes_in"`
	BytesOut        int     `json:"bytes_out"`
	Reduction       float64 `json:"reduction"`
	CodeBlocks      int     `json:"code_blocks"`

	// Languages counts preserved code blocks by language.
	Languages map[string]int `json:"languages,omitempty"`
}

// FileReport describes one file's outcome.
type FileReport struct {
	Path     string `json:"path"`
	DestPath string `json:"dest_path,omitempty"`
	Title    string `json:"title,omitempty"`
	Error    string `json:"error,omitempty"`

	BytesIn    int     `json:"bytes_in,omitempty"`
	BytesOut   int     `json:"bytes_out,omitempty"`
	Reduction  float64 `json:"reduction,omitempty"`
	CodeBlocks int     `json:"code_blocks,omitempty"`

	Elements *slim.ElementCounts `json:"elements,omitempty"`
}

// Build assembles a Report from a runner result. File paths are made
// relative to workDir when possible.
func Build(result *runner.Result, source, dest, workDir string) *Report {
	report := &Report{
		Version:     ReportVersion,
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Dest:        dest,
		Files:       make([]FileReport, 0, len(result.Files)),
	}

	report.Totals = Totals{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesErrored:    result.Stats.FilesErrored,
		FilesWritten:    result.Stats.FilesWritten,
		BytesIn:         result.Stats.BytesIn,
		BytesOut:        result.Stats.BytesOut,
		Reduction:       result.Stats.Reduction(),
		CodeBlocks:      result.Stats.CodeBlocks,
	}

	languages := make(map[string]int)
	for _, outcome := range result.Files {
		fr := FileReport{Path: relPath(outcome.Path, workDir)}

		if outcome.Error != nil {
			fr.Error = outcome.Error.Error()
			report.Files = append(report.Files, fr)
			continue
		}
		if outcome.Result == nil {
			continue
		}

		res := outcome.Result
		fr.DestPath = relPath(res.DestPath, workDir)
		fr.Title = res.Title
		fr.BytesIn = res.BytesIn
		fr.BytesOut = res.BytesOut
		fr.Reduction = res.Reduction()
		fr.CodeBlocks = res.CodeBlocks
		elements := res.Elements
		fr.Elements = &elements

		for _, lang := range res.Languages {
			languages[lang]++
		}

		report.Files = append(report.Files, fr)
	}

	if len(languages) > 0 {
		report.Totals.Languages = languages
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})

	return report
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func relPath(path, workDir string) string {
	if workDir == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}
