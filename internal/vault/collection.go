package vault

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/dgallion1/bookbind/internal/note"
)

// Collection resolves notes against a flat, host-managed document set,
// addressed by slash-separated paths like "Sample book/Scene 1.md". There
// is no real directory hierarchy: a "folder" is the set of documents whose
// path sits directly under the given prefix segment. Matching is
// case-insensitive throughout.
type Collection struct {
	docs []note.Document
	text map[string]string
}

func NewCollection() *Collection {
	return &Collection{text: make(map[string]string)}
}

// Add registers a document under its collection path, replacing any
// existing document at the same path.
func (c *Collection) Add(docPath, content string) {
	if _, exists := c.text[docPath]; !exists {
		c.docs = append(c.docs, note.Document{Name: path.Base(docPath), Path: docPath})
	}
	c.text[docPath] = content
}

func (c *Collection) Resolve(target string) (note.Document, bool) {
	for _, doc := range c.docs {
		base := strings.TrimSuffix(doc.Name, ".md")
		if strings.EqualFold(target, doc.Name) || strings.EqualFold(target, base) {
			return doc, true
		}
	}
	return note.Document{}, false
}

func (c *Collection) ListFolder(folder string) ([]note.Document, bool) {
	var docs []note.Document
	for _, doc := range c.docs {
		if strings.EqualFold(path.Dir(doc.Path), folder) && strings.HasSuffix(doc.Name, ".md") {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		return nil, false
	}
	sort.Slice(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Name) < strings.ToLower(docs[j].Name)
	})
	return docs, true
}

func (c *Collection) Read(doc note.Document) string {
	content, ok := c.text[doc.Path]
	if !ok {
		return fmt.Sprintf("[Error reading file: %s not in collection]", doc.Path)
	}
	return strings.TrimSpace(content)
}

// WriteNote stores an output note at the collection root.
func (c *Collection) WriteNote(name, content string) error {
	c.Add(name, content)
	return nil
}
