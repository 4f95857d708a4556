// Command bookbind assembles a tree of markdown notes into a single
// manuscript and prints it with its word count.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/bookbind/internal/compiler"
	"github.com/dgallion1/bookbind/internal/vault"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var positional []string
	var final, html bool
	var outPath string

	// Flags may appear anywhere; they are filtered out before the
	// positional arguments are read.
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--final":
			final = true
		case "--html":
			html = true
		case "--out":
			i++
			if i >= len(args) {
				fmt.Fprintln(stderr, "Error: --out requires a file argument")
				return 1
			}
			outPath = args[i]
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) < 1 {
		printUsage(stderr)
		return 1
	}
	input := positional[0]
	root := "."
	if len(positional) > 1 {
		root = positional[1]
	}

	c := compiler.New(vault.NewFS(root), compiler.Options{Final: final})
	res, err := c.Compile(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	body := res.Output
	if html {
		body, err = compiler.RenderHTML(res.Output)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if outPath != "" {
		doc := fmt.Sprintf("Word Count: %d\n%s", res.WordCount, body)
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "Word Count: %d\n", res.WordCount)
	fmt.Fprint(stdout, body)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookbind <filename_or_folder> [root_folder] [--final] [--html] [--out <file>]")
	fmt.Fprintln(w, "Example: bookbind 'kanban 1'")
	fmt.Fprintln(w, "Example: bookbind 'my_folder'")
	fmt.Fprintln(w, "Example: bookbind 'my_folder' . --final")
}
