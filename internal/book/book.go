// Package book is the embedded-form command layer: named operations a
// host note application triggers against its own document collection,
// each writing the assembled manuscript back as a note.
package book

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/bookbind/internal/compiler"
	"github.com/dgallion1/bookbind/internal/vault"
)

// Settings is the host-persisted configuration for the book commands.
type Settings struct {
	FolderToExamine  string
	FinalMode        bool
	StripFrontmatter bool
}

func DefaultSettings() Settings {
	return Settings{FolderToExamine: "Sample book"}
}

// Host is the document store the commands operate on: a vault that can
// also persist the output note.
type Host interface {
	vault.Vault
	vault.Writer
}

// Binder runs book assembly against a host and writes the result note.
type Binder struct {
	host     Host
	settings Settings
	log      *slog.Logger
}

func New(host Host, settings Settings, log *slog.Logger) *Binder {
	if settings.FolderToExamine == "" {
		settings.FolderToExamine = DefaultSettings().FolderToExamine
	}
	return &Binder{host: host, settings: settings, log: log}
}

// ParseBookFolder assembles the configured folder in draft mode.
func (b *Binder) ParseBookFolder() (compiler.Result, error) {
	return b.run(false)
}

// BindBookFinal assembles the configured folder in final mode.
func (b *Binder) BindBookFinal() (compiler.Result, error) {
	return b.run(true)
}

// Run assembles using the configured default mode; this backs the
// single-click trigger.
func (b *Binder) Run() (compiler.Result, error) {
	return b.run(b.settings.FinalMode)
}

func (b *Binder) run(final bool) (compiler.Result, error) {
	c := compiler.New(b.host, compiler.Options{
		Final:            final,
		StripFrontmatter: b.settings.StripFrontmatter,
	})

	res, err := c.Compile(b.settings.FolderToExamine)
	if err != nil {
		// Nothing is written on failure.
		b.log.Error("book compile failed", "folder", b.settings.FolderToExamine, "error", err)
		return compiler.Result{}, err
	}

	name := b.settings.FolderToExamine + ".md"
	body := fmt.Sprintf("Word Count: %d\n%s", res.WordCount, res.Output)
	if err := b.host.WriteNote(name, body); err != nil {
		return compiler.Result{}, fmt.Errorf("write output note: %w", err)
	}

	b.log.Info("book assembled",
		"folder", b.settings.FolderToExamine,
		"note", name,
		"words", res.WordCount,
		"final", final,
	)
	return res, nil
}
