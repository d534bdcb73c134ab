package slim

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ElementCounts tallies the structural elements of a source document.
// The counts feed run reports only; the slimming transform itself is
// line-oriented and never consults this parse.
type ElementCounts struct {
	Headings   int `json:"headings"`
	Links      int `json:"links"`
	Images     int `json:"images"`
	CodeBlocks int `json:"code_blocks"`
	Tables     int `json:"tables"`
}

// Scan parses content as GFM and counts its structural elements.
// Unparseable input simply yields low counts; there is no error path.
func Scan(content []byte) ElementCounts {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	var counts ElementCounts
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			counts.Headings++
		case ast.KindLink, ast.KindAutoLink:
			counts.Links++
		case ast.KindImage:
			counts.Images++
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			counts.CodeBlocks++
		case extast.KindTable:
			counts.Tables++
		}
		return ast.WalkContinue, nil
	})

	return counts
}
