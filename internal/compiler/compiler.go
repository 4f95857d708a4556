// Package compiler assembles a tree of markdown notes into one manuscript.
// It walks the list items under each level-2 heading, inlines the content
// of whole-item wikilinks, and counts words over the inlined content only.
package compiler

import (
	"fmt"
	"strings"

	"github.com/dgallion1/bookbind/internal/note"
	"github.com/dgallion1/bookbind/internal/vault"
	"github.com/dgallion1/bookbind/internal/wordcount"
)

// Options control one compile run.
type Options struct {
	// Final emits clean continuous prose for publishing. When false the
	// draft rendering keeps "---" separators and [[target]] labels for
	// review.
	Final bool

	// StripFrontmatter removes YAML frontmatter from resolved note
	// content before it is embedded and counted.
	StripFrontmatter bool
}

// Result is the terminal artifact of one compile: the assembled output
// and the word count over resolved wikilink content.
type Result struct {
	Output    string
	WordCount int
}

// NotFoundError aborts a compile: the input named neither an existing
// note nor a folder containing markdown notes.
type NotFoundError struct {
	Input string
	Empty bool // the folder exists but holds no markdown notes
}

func (e *NotFoundError) Error() string {
	if e.Empty {
		return fmt.Sprintf("no markdown files found in folder %q", e.Input)
	}
	return fmt.Sprintf("file or folder %q not found", e.Input)
}

// Compiler runs the assembly pipeline against one vault backend.
type Compiler struct {
	vault vault.Vault
	opts  Options
}

func New(v vault.Vault, opts Options) *Compiler {
	return &Compiler{vault: v, opts: opts}
}

// Compile assembles the notes named by input, which may be a folder of
// markdown notes (processed in case-insensitive filename order) or a
// single note. Unresolvable wikilinks degrade to inline placeholders;
// only a missing input or an empty folder fails the whole run.
func (c *Compiler) Compile(input string) (Result, error) {
	docs, err := c.inputDocuments(input)
	if err != nil {
		return Result{}, err
	}

	var out strings.Builder
	var counted strings.Builder

	for _, doc := range docs {
		for _, group := range note.ParseHeadingGroups(c.vault.Read(doc)) {
			for _, item := range group.Items {
				c.renderItem(note.StripCheckbox(item), &out, &counted)
			}
		}
	}

	return Result{
		Output:    out.String(),
		WordCount: wordcount.Count(counted.String()),
	}, nil
}

func (c *Compiler) inputDocuments(input string) ([]note.Document, error) {
	docs, folderExists := c.vault.ListFolder(input)
	if folderExists {
		if len(docs) == 0 {
			return nil, &NotFoundError{Input: input, Empty: true}
		}
		return docs, nil
	}

	doc, ok := c.vault.Resolve(input)
	if !ok {
		return nil, &NotFoundError{Input: input}
	}
	return []note.Document{doc}, nil
}

func (c *Compiler) renderItem(item string, out, counted *strings.Builder) {
	target, isLink := note.ExtractWikilink(item)
	if !isLink {
		out.WriteString(item + "\n")
		if !c.opts.Final {
			out.WriteString("\n")
		}
		return
	}

	linked, ok := c.vault.Resolve(target)
	if !ok {
		fmt.Fprintf(out, "[Link not found: %s]\n", target)
		return
	}

	content := c.vault.Read(linked)
	if c.opts.StripFrontmatter {
		content = note.StripFrontmatter(content)
	}

	if c.opts.Final {
		out.WriteString(content + "\n")
	} else {
		out.WriteString("---\n\n")
		out.WriteString("[[" + target + "]]\n\n")
		out.WriteString(content + "\n\n")
	}

	// Only resolved link content feeds the word count.
	counted.WriteString(content + "\n")
}
