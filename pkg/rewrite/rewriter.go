// Package rewrite implements the single-pass Markdown slimming
// transform. It is line-oriented by design: the input is never parsed
// into a syntax tree, and fenced code is carried through byte-for-byte.
package rewrite

import (
	"regexp"
	"strings"
)

// state is the parser state of the line-by-line pass. Modeling the
// modes as one enum rules out impossible combinations such as being
// inside a code block and a TOC section at the same time.
type state int

const (
	stateNormal state = iota
	stateFrontMatter
	stateCode
	stateTOC
)

const frontMatterDelim = "---"

var (
	tocHeadingPattern = regexp.MustCompile(`(?i)^##?\s+Table of Contents`)
	tocEndPattern     = regexp.MustCompile(`^##\s+\w`)

	htmlCommentPattern = regexp.MustCompile(`<!--.*?-->`)
)

// CodeBlock records one fenced block encountered during a rewrite.
type CodeBlock struct {
	// Info is the fence info string (language tag), possibly empty.
	Info string

	// Content is the interior of the block, without the fence lines.
	Content string
}

// Stats captures what a rewrite saw and removed. It is advisory
// metadata for reporting; the transform itself depends on none of it.
type Stats struct {
	LinesIn  int
	LinesOut int

	// CodeBlocks lists fenced blocks in document order, including
	// blocks dropped when code preservation is disabled.
	CodeBlocks []CodeBlock

	// FrontMatter is the raw interior of a stripped front-matter
	// block, empty when the document had none.
	FrontMatter string

	BadgesDropped   int
	TablesFlattened int
}

// Result is the outcome of one rewrite.
type Result struct {
	Text  string
	Stats Stats
}

// Options control optional rewrite behavior.
type Options struct {
	// PreserveCode keeps fenced blocks verbatim. When false the
	// entire block, fences included, is removed from the output.
	PreserveCode bool
}

// Rewriter applies the slimming transform to whole documents. It is
// stateless between calls and safe for concurrent use.
type Rewriter struct {
	opts Options
}

// New creates a Rewriter with the given options.
func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// Rewrite transforms one document. It is a total, deterministic
// function of its input: any string in, exactly one string out.
func (r *Rewriter) Rewrite(text string) Result {
	lines := strings.Split(text, "\n")

	st := stateNormal
	var out []string
	var codeBuf []string
	var fmBuf []string
	codeInfo := ""
	stats := Stats{LinesIn: len(lines)}

	for i, line := range lines {
		switch st {
		case stateFrontMatter:
			if strings.TrimSpace(line) == frontMatterDelim {
				st = stateNormal
			} else {
				fmBuf = append(fmBuf, line)
			}
			continue

		case stateCode:
			// Code mode wins over every other rule: the line is
			// buffered untouched even if it looks like a TOC
			// heading, a table row, or a front-matter delimiter.
			codeBuf = append(codeBuf, line)
			if isFence(line) {
				stats.CodeBlocks = append(stats.CodeBlocks, CodeBlock{
					Info:    codeInfo,
					Content: strings.Join(codeBuf[1:len(codeBuf)-1], "\n"),
				})
				if r.opts.PreserveCode {
					out = append(out, codeBuf...)
				}
				codeBuf = nil
				codeInfo = ""
				st = stateNormal
			}
			continue

		case stateTOC:
			// The TOC section ends at the next second-level heading,
			// which itself belongs to the following section and is
			// processed normally.
			if !tocEndPattern.MatchString(line) {
				continue
			}
			st = stateNormal
		}

		// A bare delimiter is front matter only on the very first line.
		if i == 0 && strings.TrimSpace(line) == frontMatterDelim {
			st = stateFrontMatter
			continue
		}

		if tocHeadingPattern.MatchString(line) {
			st = stateTOC
			continue
		}

		hasOpen := strings.Contains(line, "<!--")
		hasClose := strings.Contains(line, "-->")
		switch {
		case hasOpen && hasClose:
			line = htmlCommentPattern.ReplaceAllString(line, "")
		case hasOpen, hasClose:
			// A dangling delimiter discards the whole line; comments
			// spanning multiple lines are not tracked.
			continue
		}

		if isFence(line) {
			st = stateCode
			codeInfo = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			codeBuf = []string{line}
			continue
		}

		if badgeLinePattern.MatchString(line) {
			stats.BadgesDropped++
			continue
		}

		switch rewritten, action := applyRules(line); action {
		case Emit:
			// The only emitting rule is table flattening, so an Emit
			// is exactly one bulleted table row in the output.
			stats.TablesFlattened++
			out = append(out, rewritten)
		case Keep:
			out = append(out, rewritten)
		case Drop:
		}
	}

	// An unterminated fence flushes verbatim rather than vanishing.
	if st == stateCode && r.opts.PreserveCode {
		out = append(out, codeBuf...)
	}

	out = normalize(out)

	stats.LinesOut = len(out)
	stats.FrontMatter = strings.Join(fmBuf, "\n")

	return Result{Text: strings.Join(out, "\n"), Stats: stats}
}

// isFence reports whether the line opens or closes a fenced code block.
func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
