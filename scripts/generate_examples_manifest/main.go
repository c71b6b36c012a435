// Command generate_examples_manifest walks the examples/ tree and emits a
// JSON index of each standalone example: its directory, package doc
// comment, and the query it runs. It is a documentation aid, not part of
// the interpreter itself — re-run it after adding or editing an example to
// keep examples_index.json in sync.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Entry describes one examples/*/main.go program.
type Entry struct {
	Dir   string `json:"dir"`
	Doc   string `json:"doc"`
	Query string `json:"query"`
}

func main() {
	root := flag.String("dir", "examples", "examples directory to scan")
	outPath := flag.String("out", "examples_index.json", "output JSON file")
	flag.Parse()

	var entries []Entry
	fset := token.NewFileSet()

	err := filepath.WalkDir(*root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(path) != "main.go" {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		entries = append(entries, Entry{
			Dir:   dir,
			Doc:   strings.TrimSpace(file.Doc.Text()),
			Query: extractQuery(src),
		})
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error scanning %s: %v\n", *root, err)
		os.Exit(2)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding json: %v\n", err)
		os.Exit(2)
	}

	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *outPath, err)
		os.Exit(2)
	}

	fmt.Printf("wrote %d example entries to %s\n", len(entries), *outPath)
}

var queryCallRE = regexp.MustCompile(`parser\.ParseQuery\(` + "`" + `([^` + "`" + `]*)` + "`" + `\)`)

// extractQuery pulls the literal string argument out of the example's
// parser.ParseQuery(`...`) call. Examples are expected to call it with a
// single backtick-quoted literal; anything else is left blank rather than
// guessed at.
func extractQuery(src []byte) string {
	m := queryCallRE.FindSubmatch(src)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(string(m[1]))
}
