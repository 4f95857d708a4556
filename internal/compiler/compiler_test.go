package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/bookbind/internal/vault"
)

func bookVault() *vault.Collection {
	c := vault.NewCollection()
	c.Add("book/outline.md", `## Act One

- [[Scene 1]]
- a note to self
- [[Scene 2|the confrontation]]
- [[Missing Scene]]
`)
	c.Add("Scene 1.md", "It was a dark and stormy night.")
	c.Add("Scene 2.md", "The **door** burst open.")
	return c
}

func TestCompile_DraftMode(t *testing.T) {
	c := New(bookVault(), Options{})
	res, err := c.Compile("book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "---\n\n[[Scene 1]]\n\nIt was a dark and stormy night.\n\n" +
		"a note to self\n\n" +
		"---\n\n[[Scene 2]]\n\nThe **door** burst open.\n\n" +
		"[Link not found: Missing Scene]\n"
	if res.Output != want {
		t.Errorf("draft output mismatch:\ngot:  %q\nwant: %q", res.Output, want)
	}

	// Words come only from the two resolved scenes: 7 + 4 after the
	// emphasis markers are stripped.
	if res.WordCount != 11 {
		t.Errorf("expected word count 11, got %d", res.WordCount)
	}
}

func TestCompile_FinalMode(t *testing.T) {
	c := New(bookVault(), Options{Final: true})
	res, err := c.Compile("book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "It was a dark and stormy night.\n" +
		"a note to self\n" +
		"The **door** burst open.\n" +
		"[Link not found: Missing Scene]\n"
	if res.Output != want {
		t.Errorf("final output mismatch:\ngot:  %q\nwant: %q", res.Output, want)
	}
	if strings.Contains(res.Output, "---") {
		t.Error("final output must not contain separators")
	}
	if res.WordCount != 11 {
		t.Errorf("expected word count 11, got %d", res.WordCount)
	}
}

func TestCompile_DisplayAliasNeverAppears(t *testing.T) {
	c := New(bookVault(), Options{})
	res, err := c.Compile("book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(res.Output, "the confrontation") {
		t.Error("display alias leaked into output")
	}
}

func TestCompile_CheckboxItemsEqualPlainItems(t *testing.T) {
	plain := vault.NewCollection()
	plain.Add("b/o.md", "## H\n\n- [[A]]\n")
	plain.Add("A.md", "alpha beta")

	boxed := vault.NewCollection()
	boxed.Add("b/o.md", "## H\n\n- [x] [[A]]\n")
	boxed.Add("A.md", "alpha beta")

	r1, err := New(plain, Options{}).Compile("b")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := New(boxed, Options{}).Compile("b")
	if err != nil {
		t.Fatal(err)
	}
	if r1.Output != r2.Output || r1.WordCount != r2.WordCount {
		t.Errorf("checkbox item diverged: %q (%d) vs %q (%d)",
			r1.Output, r1.WordCount, r2.Output, r2.WordCount)
	}
}

func TestCompile_MissingLinkDoesNotCount(t *testing.T) {
	c := vault.NewCollection()
	c.Add("b/o.md", "## H\n\n- [[Nope]]\n")

	res, err := New(c, Options{}).Compile("b")
	if err != nil {
		t.Fatalf("missing link must not abort the compile: %v", err)
	}
	if res.Output != "[Link not found: Nope]\n" {
		t.Errorf("unexpected output %q", res.Output)
	}
	if res.WordCount != 0 {
		t.Errorf("placeholder text must not be counted, got %d", res.WordCount)
	}
}

func TestCompile_SingleNoteInput(t *testing.T) {
	c := vault.NewCollection()
	c.Add("outline.md", "## H\n\n- [[A]]\n")
	c.Add("A.md", "one two three")

	res, err := New(c, Options{Final: true}).Compile("outline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Output != "one two three\n" {
		t.Errorf("unexpected output %q", res.Output)
	}
	if res.WordCount != 3 {
		t.Errorf("expected 3 words, got %d", res.WordCount)
	}
}

func TestCompile_NoHeadingsYieldsEmptyResult(t *testing.T) {
	c := vault.NewCollection()
	c.Add("plain.md", "Prose only.\n\n- a list item outside any heading\n")

	res, err := New(c, Options{}).Compile("plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Output != "" {
		t.Errorf("expected empty output, got %q", res.Output)
	}
	if res.WordCount != 0 {
		t.Errorf("expected word count 0, got %d", res.WordCount)
	}
}

func TestCompile_InputNotFound(t *testing.T) {
	c := vault.NewCollection()
	_, err := New(c, Options{}).Compile("ghost")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Empty {
		t.Error("a missing input is not an empty folder")
	}
}

func TestCompile_EmptyFolderIsFatal(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "book"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := New(vault.NewFS(root), Options{}).Compile("book")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !nf.Empty {
		t.Error("expected the empty-folder condition to be reported")
	}
}

func TestCompile_FolderOrderIsFilenameAscending(t *testing.T) {
	c := vault.NewCollection()
	c.Add("b/b.md", "## H\n- [[Two]]\n")
	c.Add("b/A.md", "## H\n- [[One]]\n")
	c.Add("One.md", "first")
	c.Add("Two.md", "second")

	res, err := New(c, Options{Final: true}).Compile("b")
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "first\nsecond\n" {
		t.Errorf("expected case-insensitive filename order, got %q", res.Output)
	}
}

func TestCompile_Idempotent(t *testing.T) {
	v := bookVault()
	c := New(v, Options{})

	r1, err := c.Compile("book")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := c.Compile("book")
	if err != nil {
		t.Fatal(err)
	}
	if r1.Output != r2.Output || r1.WordCount != r2.WordCount {
		t.Error("repeated compiles of unchanged input must be byte-identical")
	}
}

func TestCompile_StripFrontmatterOption(t *testing.T) {
	c := vault.NewCollection()
	c.Add("b/o.md", "## H\n- [[A]]\n")
	c.Add("A.md", "---\ntitle: A\n---\nreal words here")

	res, err := New(c, Options{Final: true, StripFrontmatter: true}).Compile("b")
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "real words here\n" {
		t.Errorf("expected frontmatter stripped, got %q", res.Output)
	}
	if res.WordCount != 3 {
		t.Errorf("expected 3 words, got %d", res.WordCount)
	}
}

func TestNotFoundError_Messages(t *testing.T) {
	missing := &NotFoundError{Input: "x"}
	if !strings.Contains(missing.Error(), "not found") {
		t.Errorf("unexpected message %q", missing.Error())
	}
	empty := &NotFoundError{Input: "x", Empty: true}
	if !strings.Contains(empty.Error(), "no markdown files") {
		t.Errorf("unexpected message %q", empty.Error())
	}
}
