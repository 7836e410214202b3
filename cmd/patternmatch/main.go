// Command patternmatch loads a BNF+ grammar file and matches one of its
// declared keys against an input file, or stdin if none is given, printing
// the resulting match tree as indented text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fiskmans/patternmatcher"
	"github.com/fiskmans/patternmatcher/bnfplus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patternmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	grammarPath := fs.String("grammar", "", "path to a BNF+ grammar file (required)")
	root := fs.String("root", "", "declared key to match against the input (required)")
	inputPath := fs.String("input", "", "path to the input file (default: read stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *grammarPath == "" || *root == "" {
		fmt.Fprintln(stderr, "patternmatch: -grammar and -root are required")
		fs.Usage()
		return 2
	}

	cat, err := loadGrammar(*grammarPath)
	if err != nil {
		fmt.Fprintf(stderr, "patternmatch: %v\n", err)
		return 1
	}

	input, err := readInput(*inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "patternmatch: %v\n", err)
		return 1
	}

	tree, ok := cat.Match(*root, input)
	if !ok {
		fmt.Fprintln(stdout, "no match")
		return 1
	}

	printTree(stdout, keysByFragment(cat), tree, 0)
	return 0
}

// keysByFragment inverts cat's key-to-fragment mapping so printTree can
// recover the declared key for a matched fragment, when it has one.
func keysByFragment(cat *patternmatcher.Catalogue[string]) map[*patternmatcher.Fragment]string {
	out := make(map[*patternmatcher.Fragment]string)
	for _, key := range cat.Keys() {
		if f, ok := cat.Lookup(key); ok {
			out[f] = key
		}
	}
	return out
}

func loadGrammar(path string) (*patternmatcher.Catalogue[string], error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grammar file: %w", err)
	}

	cat, errs := bnfplus.Parse(string(text))
	if len(errs) != 0 {
		return nil, fmt.Errorf("parsing grammar: %w", errs[0])
	}
	return cat, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return data, nil
}

func printTree(w io.Writer, keys map[*patternmatcher.Fragment]string, s patternmatcher.Success, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	if key, ok := keys[s.Fragment]; ok {
		fmt.Fprintf(w, "%s [%d:%d]\n", key, s.Begin, s.End)
	} else {
		fmt.Fprintf(w, "[%d:%d]\n", s.Begin, s.End)
	}
	for _, child := range s.Children {
		printTree(w, keys, child, depth+1)
	}
}
