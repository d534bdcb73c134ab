package rewrite

import (
	"regexp"
	"strings"
)

// footerWindow is how many trailing lines are scanned for an
// attribution footer.
const footerWindow = 15

// maxBlankRun is the maximum number of consecutive blank lines kept.
const maxBlankRun = 2

// footerPattern matches an attribution footer line, bolded or plain.
// Emphasis stripping runs before normalization, so the plain form is
// the one that usually survives to this point.
var footerPattern = regexp.MustCompile(`(?i)^(\*\*)?maintained by\b`)

// normalize applies the post-pass over the full output sequence:
// blank-run collapsing, edge trimming, and footer truncation.
func normalize(lines []string) []string {
	lines = collapseBlankRuns(lines)
	lines = trimBlankEdges(lines)
	lines = truncateFooter(lines)
	return trimBlankEdges(lines)
}

func collapseBlankRuns(lines []string) []string {
	result := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks <= maxBlankRun {
				result = append(result, line)
			}
			continue
		}
		blanks = 0
		result = append(result, line)
	}
	return result
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// truncateFooter scans the final lines for an attribution footer and
// cuts everything from the first match on, along with a horizontal
// rule immediately above it.
func truncateFooter(lines []string) []string {
	start := len(lines) - footerWindow
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		if !footerPattern.MatchString(lines[i]) {
			continue
		}
		lines = lines[:i]
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "---" {
			lines = lines[:len(lines)-1]
		}
		return lines
	}
	return lines
}
