package slim

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatterTitle extracts a document title from raw front-matter
// text. Front matter is always stripped from the output; the title is
// kept only for logs and reports. Malformed YAML yields an empty title
// rather than an error.
func frontMatterTitle(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return ""
	}

	for _, key := range []string{"title", "Title"} {
		if v, ok := meta[key]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
