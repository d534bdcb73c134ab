// Package slim wires the rewrite transform into a per-file pipeline:
// categorized read, rewrite, stats enrichment, and an atomic write of
// the slimmed copy under the mirrored destination path.
package slim

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/mdslim/pkg/config"
	"github.com/yaklabco/mdslim/pkg/fsutil"
	"github.com/yaklabco/mdslim/pkg/langdetect"
	"github.com/yaklabco/mdslim/pkg/rewrite"
)

// Sentinel errors scoping a failure to one side of the pipeline.
// Failures are terminal for the file only; the batch continues.
var (
	// ErrRead indicates the source file could not be read or decoded.
	ErrRead = errors.New("read source file")

	// ErrWrite indicates the destination could not be written.
	ErrWrite = errors.New("write destination file")
)

// Pipeline processes one file end to end. It is stateless between
// files and safe for concurrent use by multiple workers.
type Pipeline struct {
	rewriter *rewrite.Rewriter
	cfg      *config.Config
}

// NewPipeline creates a Pipeline for the given configuration.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		rewriter: rewrite.New(rewrite.Options{PreserveCode: cfg.PreserveCode}),
		cfg:      cfg,
	}
}

// FileResult describes the outcome of slimming a single file.
type FileResult struct {
	// Path is the source file path.
	Path string

	// DestPath is the mirrored destination path the output was written to.
	DestPath string

	// Title is the document title from stripped front matter, if any.
	Title string

	BytesIn  int
	BytesOut int
	LinesIn  int
	LinesOut int

	// CodeBlocks is the number of fenced blocks encountered.
	CodeBlocks int

	// Languages holds one entry per fenced block: the fence tag, or
	// the detected language when the fence was untagged.
	Languages []string

	// Elements counts structural elements of the source document.
	Elements ElementCounts

	// Written is false when the destination already held identical
	// content from a previous run.
	Written bool
}

// Reduction returns the size reduction as a fraction in [0, 1].
func (r *FileResult) Reduction() float64 {
	if r.BytesIn == 0 {
		return 0
	}
	return 1 - float64(r.BytesOut)/float64(r.BytesIn)
}

// ProcessFile slims srcPath and writes the result to destPath,
// creating intermediate directories as needed.
func (p *Pipeline) ProcessFile(ctx context.Context, srcPath, destPath string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, srcPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	res := p.rewriter.Rewrite(string(content))
	output := []byte(res.Text)

	result := &FileResult{
		Path:       srcPath,
		DestPath:   destPath,
		Title:      frontMatterTitle(res.Stats.FrontMatter),
		BytesIn:    len(content),
		BytesOut:   len(output),
		LinesIn:    res.Stats.LinesIn,
		LinesOut:   res.Stats.LinesOut,
		CodeBlocks: len(res.Stats.CodeBlocks),
		Languages:  blockLanguages(res.Stats.CodeBlocks),
		Elements:   Scan(content),
	}

	if err := fsutil.EnsureDir(filepath.Dir(destPath)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, destPath, output, info.Mode.Perm())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	result.Written = written

	return result, nil
}

// blockLanguages resolves a language name for each fenced block,
// detecting one for untagged fences.
func blockLanguages(blocks []rewrite.CodeBlock) []string {
	if len(blocks) == 0 {
		return nil
	}
	langs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lang := b.Info
		if lang == "" {
			lang = langdetect.Detect([]byte(b.Content))
		}
		langs = append(langs, lang)
	}
	return langs
}
