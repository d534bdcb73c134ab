// Package langdetect identifies the language of untagged fenced code
// blocks so run reports can break preserved code down by language.
// It uses go-enry, with a few cheap pattern checks ahead of the
// classifier for languages the classifier tends to confuse.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// classifierCandidates bounds the classifier to languages that show up
// in documentation code blocks in practice.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a fence-tag style language name for code content.
// Returns "text" when detection fails or confidence is low.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern handles highly indicative prefixes the classifier is
// unreliable on for short snippets.
func detectByPattern(trimmed []byte) string {
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("FROM ")):
		return "dockerfile"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case bytes.HasPrefix(bytes.ToLower(trimmed), []byte("<!doctype html")),
		bytes.HasPrefix(bytes.ToLower(trimmed), []byte("<html")):
		return "html"
	case bytes.HasPrefix(trimmed, []byte("$ ")):
		return "bash"
	}
	return ""
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
