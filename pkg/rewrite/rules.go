package rewrite

import (
	"regexp"
	"strings"
)

// Action tells the rewriter what to do with a rule's output.
type Action int

const (
	// Keep retains the line and runs the remaining rules on it.
	Keep Action = iota

	// Emit retains the line as-is and skips the remaining rules.
	Emit

	// Drop discards the line entirely.
	Drop
)

// Rule is a pure line transform. Rules are applied in a fixed order by
// the rewriter; each receives the output of the previous one.
type Rule func(line string) (string, Action)

var (
	// Badge images hosted by shield-generation services are pure
	// visual noise; a line that is nothing but one is dropped whole.
	badgeLinePattern = regexp.MustCompile(`^\s*!\[.*\]\(.*(?:shields\.io|badge\.).*\)\s*$`)

	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// Pictographic symbols, miscellaneous symbols, and dingbats.
	emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

	// Triple markers must be stripped before double before single;
	// the shorter patterns would otherwise corrupt nested markup.
	emphasisPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`),
		regexp.MustCompile(`\*\*([^*]+)\*\*`),
		regexp.MustCompile(`\*([^*]+)\*`),
		regexp.MustCompile(`___([^_]+)___`),
		regexp.MustCompile(`__([^_]+)__`),
		regexp.MustCompile(`_([^_]+)_`),
	}

	trailingHashPattern = regexp.MustCompile(`\s*#+\s*$`)
	deepHeadingPattern  = regexp.MustCompile(`^(\s*)#{4,}(\s+)`)

	tableSeparatorPattern = regexp.MustCompile(`^\s*\|?\s*[-:]+\s*(\|\s*[-:]+\s*)+\|?\s*$`)
	tableRowPattern       = regexp.MustCompile(`^\s*\|.*\|\s*$`)

	whitespaceRunPattern = regexp.MustCompile(`[ \t]+`)
)

// proseRules is the rule pipeline applied, in order, to every line that
// is not inside a code block, front matter, or a suppressed TOC section.
var proseRules = []Rule{
	dropBadgeLines,
	downgradeImages,
	simplifyLinks,
	stripEmoji,
	stripEmphasis,
	clampHeadings,
	flattenTables,
	collapseWhitespace,
}

// applyRules runs the prose pipeline over a single line and reports
// how it ended: Drop when a rule discarded the line, Emit when a rule
// short-circuited with a finished line, Keep when the whole pipeline
// ran through.
func applyRules(line string) (string, Action) {
	for _, rule := range proseRules {
		out, action := rule(line)
		switch action {
		case Drop:
			return "", Drop
		case Emit:
			return out, Emit
		case Keep:
			line = out
		}
	}
	return line, Keep
}

func dropBadgeLines(line string) (string, Action) {
	if badgeLinePattern.MatchString(line) {
		return "", Drop
	}
	return line, Keep
}

// downgradeImages replaces every image reference with a bracketed
// caption, keeping the alt text and discarding the URL.
func downgradeImages(line string) (string, Action) {
	return imagePattern.ReplaceAllString(line, "[Image: ${1}]"), Keep
}

// simplifyLinks replaces every link with its visible text.
func simplifyLinks(line string) (string, Action) {
	return linkPattern.ReplaceAllString(line, "${1}"), Keep
}

func stripEmoji(line string) (string, Action) {
	return emojiPattern.ReplaceAllString(line, ""), Keep
}

func stripEmphasis(line string) (string, Action) {
	for _, p := range emphasisPatterns {
		line = p.ReplaceAllString(line, "${1}")
	}
	return line, Keep
}

// clampHeadings strips trailing heading markers and rewrites headings
// deeper than level three to level three.
func clampHeadings(line string) (string, Action) {
	if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
		return line, Keep
	}
	line = trailingHashPattern.ReplaceAllString(line, "")
	line = deepHeadingPattern.ReplaceAllString(line, "${1}###${2}")
	return line, Keep
}

// flattenTables rewrites full table rows as single bulleted lines and
// drops separator rows. Lines containing a backtick are left alone so
// inline code spans with pipes survive; lines with pipes that do not
// form a full row fall through to the remaining rules.
func flattenTables(line string) (string, Action) {
	if !strings.Contains(line, "|") || strings.Contains(line, "`") {
		return line, Keep
	}
	if tableSeparatorPattern.MatchString(line) {
		return "", Drop
	}
	if !tableRowPattern.MatchString(line) {
		return line, Keep
	}
	raw := strings.Trim(strings.TrimSpace(line), "|")
	var cells []string
	for _, cell := range strings.Split(raw, "|") {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			cells = append(cells, trimmed)
		}
	}
	if len(cells) == 0 {
		return "", Drop
	}
	return "• " + strings.Join(cells, " — "), Emit
}

func collapseWhitespace(line string) (string, Action) {
	return whitespaceRunPattern.ReplaceAllString(line, " "), Keep
}
