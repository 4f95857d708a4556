// Package vault locates and reads the markdown notes a compile works on.
// Two backends implement the same contract: FS resolves against a real
// filesystem root, Collection against a flat host-managed document set.
package vault

import "github.com/dgallion1/bookbind/internal/note"

// Vault is the document lookup contract the compiler depends on.
type Vault interface {
	// Resolve locates a note by wikilink target or filename. A missing
	// ".md" extension is defaulted before lookup.
	Resolve(target string) (note.Document, bool)

	// ListFolder returns the markdown notes directly inside folder,
	// sorted case-insensitively by filename ascending. ok reports
	// whether the folder exists at all; an existing but empty folder
	// returns (nil, true).
	ListFolder(folder string) ([]note.Document, bool)

	// Read returns the trimmed full text of doc. A note that exists but
	// cannot be read comes back as an error-marker string rather than an
	// error, so a partially corrupt vault still compiles.
	Read(doc note.Document) string
}

// Writer persists an output note at the vault root, overwriting any
// previous version.
type Writer interface {
	WriteNote(name, content string) error
}
