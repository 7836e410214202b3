package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMatchesInputFile(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "grammar.bnfp")
	inputPath := filepath.Join(dir, "input.txt")

	if err := os.WriteFile(grammarPath, []byte("foo:\n  bar\n"), 0o644); err != nil {
		t.Fatalf("writing grammar file: %v", err)
	}
	if err := os.WriteFile(inputPath, []byte("bar"), 0o644); err != nil {
		t.Fatalf("writing input file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-grammar", grammarPath, "-root", "foo", "-input", inputPath}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "[0:3]") {
		t.Fatalf("expected output to mention the matched range, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "foo [0:3]") {
		t.Fatalf("expected output to resolve the matched fragment's declared key, got %q", stdout.String())
	}
}

func TestRunReadsStdinWhenNoInputGiven(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "grammar.bnfp")
	if err := os.WriteFile(grammarPath, []byte("foo:\n  bar\n"), 0o644); err != nil {
		t.Fatalf("writing grammar file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-grammar", grammarPath, "-root", "foo"}, strings.NewReader("bar"), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
}

func TestRunReportsNoMatch(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "grammar.bnfp")
	if err := os.WriteFile(grammarPath, []byte("foo:\n  bar\n"), 0o644); err != nil {
		t.Fatalf("writing grammar file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-grammar", grammarPath, "-root", "foo"}, strings.NewReader("nope"), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "no match") {
		t.Fatalf("expected \"no match\" in output, got %q", stdout.String())
	}
}

func TestRunRequiresGrammarAndRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}
