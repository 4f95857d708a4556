package note

import (
	"bufio"
	"strings"
)

// ParseHeadingGroups scans note text line by line and collects list items
// under each level-2 heading. A line opens a heading iff, after trimming,
// it starts with exactly "##" followed by end-of-line or a space, so "###"
// and "##Title" do not qualify. A line is a list item iff it starts with
// "- " or "* " and a heading is currently open; items before the first
// heading are ignored, as is all other body text. A note with no level-2
// headings yields nil.
func ParseHeadingGroups(content string) []HeadingGroup {
	var groups []HeadingGroup
	var current *HeadingGroup

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case isLevel2Heading(line):
			if current != nil {
				groups = append(groups, *current)
			}
			title := ""
			if len(line) > 2 {
				title = strings.TrimSpace(line[3:])
			}
			current = &HeadingGroup{Heading: title}

		case current != nil && (strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")):
			current.Items = append(current.Items, strings.TrimSpace(line[2:]))
		}
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

func isLevel2Heading(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "##") {
		return false
	}
	return len(trimmed) == 2 || trimmed[2] == ' '
}

// StripCheckbox removes a leading task-list marker ("[ ] ", "[x] ", or
// "[X] ") from a trimmed list item. Anything else is left untouched.
func StripCheckbox(item string) string {
	if strings.HasPrefix(item, "[ ] ") || strings.HasPrefix(item, "[x] ") || strings.HasPrefix(item, "[X] ") {
		return item[4:]
	}
	return item
}
