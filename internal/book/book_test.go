package book

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgallion1/bookbind/internal/vault"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hostWithBook() *vault.Collection {
	c := vault.NewCollection()
	c.Add("Sample book/outline.md", "## Chapters\n\n- [[Chapter 1]]\n- [[Chapter 2]]\n")
	c.Add("Chapter 1.md", "Call me Ishmael.")
	c.Add("Chapter 2.md", "The whale waited.")
	return c
}

func TestParseBookFolder_WritesDraftNote(t *testing.T) {
	host := hostWithBook()
	b := New(host, DefaultSettings(), discardLogger())

	res, err := b.ParseBookFolder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.WordCount != 6 {
		t.Errorf("expected 6 words, got %d", res.WordCount)
	}

	doc, ok := host.Resolve("Sample book.md")
	if !ok {
		t.Fatal("expected output note to be written")
	}
	content := host.Read(doc)
	if !strings.HasPrefix(content, "Word Count: 6\n") {
		t.Errorf("expected word-count header, got %q", content)
	}
	if !strings.Contains(content, "---\n\n[[Chapter 1]]") {
		t.Errorf("expected draft separators and link labels, got %q", content)
	}
}

func TestBindBookFinal_CleanProse(t *testing.T) {
	host := hostWithBook()
	b := New(host, DefaultSettings(), discardLogger())

	if _, err := b.BindBookFinal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, _ := host.Resolve("Sample book.md")
	content := host.Read(doc)
	if strings.Contains(content, "---") || strings.Contains(content, "[[") {
		t.Errorf("final note must be clean prose, got %q", content)
	}
	if !strings.Contains(content, "Call me Ishmael.\nThe whale waited.") {
		t.Errorf("expected concatenated chapters, got %q", content)
	}
}

func TestRun_UsesConfiguredDefaultMode(t *testing.T) {
	host := hostWithBook()
	b := New(host, Settings{FolderToExamine: "Sample book", FinalMode: true}, discardLogger())

	if _, err := b.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, _ := host.Resolve("Sample book.md")
	if content := host.Read(doc); strings.Contains(content, "---") {
		t.Errorf("expected final rendering by default, got %q", content)
	}
}

func TestRun_FailureWritesNothing(t *testing.T) {
	host := vault.NewCollection()
	b := New(host, Settings{FolderToExamine: "Nowhere"}, discardLogger())

	if _, err := b.Run(); err == nil {
		t.Fatal("expected an error for a missing folder")
	}
	if _, ok := host.Resolve("Nowhere.md"); ok {
		t.Error("no output note may be written on failure")
	}
}

func TestNew_DefaultsEmptyFolder(t *testing.T) {
	b := New(vault.NewCollection(), Settings{}, discardLogger())
	if b.settings.FolderToExamine != "Sample book" {
		t.Errorf("expected default folder, got %q", b.settings.FolderToExamine)
	}
}
