// Package note models markdown notes and the line-level parsing the
// compiler is built on: level-2 heading groups, list items, checkbox
// markers, and whole-item wikilinks.
package note

// Document is one addressable markdown note.
type Document struct {
	Name string // base filename including extension, e.g. "Scene 1.md"
	Path string // backend locator: filesystem path or collection key
}

// HeadingGroup is one level-2 heading's title plus the list items found
// between it and the next level-2 heading (or end of file).
type HeadingGroup struct {
	Heading string
	Items   []string
}
