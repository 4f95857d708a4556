// Package wordcount approximates a prose word count for markdown text.
// It strips decoration with an ordered set of textual reductions rather
// than a full markdown parse; downstream consumers depend on the counts
// this exact order produces, so the order is part of the contract.
package wordcount

import (
	"regexp"
	"strings"
)

var (
	wikilinkRe = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`)
	fenceRe    = regexp.MustCompile("(?m)^```[^\n]*$")
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	imageRe    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	bulletRe   = regexp.MustCompile(`(?m)^[-*+]\s+`)
	numberedRe = regexp.MustCompile(`(?m)^\d+\.\s+`)
	emphasisRe = regexp.MustCompile(`[*_~]`)
)

// Count returns the number of whitespace-separated words left after
// markdown decoration is stripped. Wikilinks vanish entirely, fence
// markers go while fenced body lines stay, inline-code backticks are
// dropped character-wise, HTML-like tags are removed, [text](url) keeps
// its text, images with empty alt vanish, and heading/list/emphasis
// markers are stripped.
func Count(text string) int {
	text = wikilinkRe.ReplaceAllString(text, "")
	text = fenceRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "`", "")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = imageRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	text = numberedRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "")

	return len(strings.Fields(text))
}
