package note

import (
	"regexp"
	"strings"
)

// wikilinkRe matches an item that is entirely [[target]] or
// [[target|display]]. Embedded or partial bracket sequences do not match.
var wikilinkRe = regexp.MustCompile(`^\[\[([^\]|]+)(?:\|[^\]]+)?\]\]$`)

// ExtractWikilink reports whether the whole trimmed text is a wikilink.
// On a match the target before any "|" is returned and the display part is
// discarded; otherwise the original text comes back with ok=false.
func ExtractWikilink(text string) (target string, ok bool) {
	if m := wikilinkRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return m[1], true
	}
	return text, false
}
