package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dgallion1/bookbind/internal/note"
)

// FS resolves notes against a filesystem root. Lookups check the root
// directly first, then fall back to a depth-first search of
// subdirectories for an exact filename match.
type FS struct {
	root string
}

func NewFS(root string) *FS {
	return &FS{root: root}
}

func (v *FS) Resolve(target string) (note.Document, bool) {
	name := target
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}

	direct := filepath.Join(v.root, name)
	if fi, err := os.Stat(direct); err == nil && fi.Mode().IsRegular() {
		return note.Document{Name: filepath.Base(name), Path: direct}, true
	}

	if path, ok := search(v.root, filepath.Base(name)); ok {
		return note.Document{Name: filepath.Base(name), Path: path}, true
	}
	return note.Document{}, false
}

// search walks dir depth-first for an exact filename match, returning the
// first hit in traversal order. Unreadable directories are skipped.
func search(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() && e.Name() == name {
			return filepath.Join(dir, name), true
		}
	}
	for _, e := range entries {
		if e.IsDir() {
			if path, ok := search(filepath.Join(dir, e.Name()), name); ok {
				return path, true
			}
		}
	}
	return "", false
}

func (v *FS) ListFolder(folder string) ([]note.Document, bool) {
	dir := filepath.Join(v.root, folder)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		// The argument may be a directory path in its own right rather
		// than a name under the root.
		if fi, err := os.Stat(folder); err != nil || !fi.IsDir() {
			return nil, false
		}
		dir = folder
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, false
	}

	var docs []note.Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		docs = append(docs, note.Document{Name: e.Name(), Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Name) < strings.ToLower(docs[j].Name)
	})
	return docs, true
}

func (v *FS) Read(doc note.Document) string {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	return strings.TrimSpace(string(data))
}

func (v *FS) WriteNote(name, content string) error {
	path := filepath.Join(v.root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write note %s: %w", name, err)
	}
	return nil
}
