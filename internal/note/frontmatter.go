package note

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// StripFrontmatter removes a leading YAML frontmatter block from note
// content. Content without frontmatter, or with a block that fails to
// parse, is returned unchanged.
func StripFrontmatter(content string) string {
	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content
	}
	return strings.TrimSpace(string(rest))
}
