// Package bnfplus implements a self-hosted text syntax for describing a
// patternmatcher grammar: "BNF+". A document is a sequence of declarations,
// comments and empty lines; a declaration names a key and gives it one or
// more value lines, each a space-separated list of identifiers, optionally
// suffixed with ?, * or + to mean zero-or-one, zero-or-more or one-or-more
// of that identifier. An identifier refers to the declaration of that name;
// one that no declaration names matches its own text (a single-byte one
// matches that byte).
//
//	# a tiny run-length-friendly grammar
//	digit:
//	  0
//	  1
//	digits:
//	  digit+
package bnfplus

import (
	"fmt"

	"github.com/fiskmans/patternmatcher"
	"github.com/fiskmans/patternmatcher/builder"
)

// ErrNoMatch is the error Parse returns, with a nil Catalogue, when text
// does not parse as a BNF+ document at all.
type ErrNoMatch struct{}

func (ErrNoMatch) Error() string { return "bnfplus: text is not a valid BNF+ document" }

// Parse reads a BNF+ document and returns the Catalogue it describes. An
// identifier that no declaration names is taken as its own literal text,
// so it is not an error. errs is non-empty if the builder reports a
// build-time problem, such as a declared key that clashes with a
// synthesized name; a non-nil Catalogue is still returned in that case,
// built on a best-effort basis, mirroring Builder.Finalize's own contract.
func Parse(text string) (*patternmatcher.Catalogue[string], []error) {
	input := []byte(text)
	tree, ok := grammar().Match(Document, input)
	// Document is Repeat(Line, {0, Unbounded}), so Match always succeeds on
	// some prefix (possibly empty); a real parse failure shows up as that
	// prefix stopping short of the whole document.
	if !ok || tree.End != len(input) {
		return nil, []error{ErrNoMatch{}}
	}

	b := builder.New()
	synthesized := make(map[string]bool)
	declared := make(map[string]bool)

	for decl := range tree.SearchFor(mustLookup(Declaration), patternmatcher.SearchRecursive) {
		key := textOf(input, decl.Children[1])
		declared[key] = true
		lines := decl.Children[4].Children // Value's children, one per continuation line

		if len(lines) == 1 {
			addLine(b, synthesized, input, key, lines[0])
			continue
		}

		altKeys := make([]string, len(lines))
		for i, line := range lines {
			subKey := fmt.Sprintf("%s-%d", key, i)
			altKeys[i] = subKey
			declared[subKey] = true
			addLine(b, synthesized, input, subKey, line)
		}
		b.Add(key).Or(altKeys...)
	}

	// A multi-byte identifier that no declaration names matches its own
	// text; a single-byte one is left to Finalize's byte fallback.
	for part := range tree.SearchFor(mustLookup(ValuePart), patternmatcher.SearchAll) {
		name := textOf(input, part.Children[1])
		if len(name) > 1 && !declared[name] && !synthesized[name] {
			b.Add(name).Literal(name)
		}
	}

	return b.Finalize()
}

// addLine configures slot key as the Sequence of parts found on one value
// line (a Value Repeat child: Sequence(newline, Repeat(ValuePart))).
func addLine(b *builder.Builder, synthesized map[string]bool, input []byte, key string, line patternmatcher.Success) {
	parts := line.Children[1].Children // oneLineOfParts' children, one per ValuePart

	refs := make([]string, len(parts))
	for i, part := range parts {
		refs[i] = partRef(b, synthesized, input, part)
	}
	b.Add(key).And(refs...)
}

// partRef resolves one ValuePart (Sequence(requiredWS, identifier, OptionalMultiplier))
// to the string the caller's Sequence/Alternative should reference: the
// identifier itself if unsuffixed, or a synthesized, deduplicated
// "name-optional"/"name-any"/"name-repeated" slot otherwise.
func partRef(b *builder.Builder, synthesized map[string]bool, input []byte, part patternmatcher.Success) string {
	name := textOf(input, part.Children[1])

	optional := part.Children[2]
	if len(optional.Children) == 0 {
		return name
	}
	mult := optional.Children[0].Children[0] // Multiplier's chosen child

	var suffix string
	switch mult.Fragment {
	case mustLookup(MultiplierPlus):
		suffix = "repeated"
	case mustLookup(MultiplierStar):
		suffix = "any"
	case mustLookup(MultiplierQuestion):
		suffix = "optional"
	default:
		panic("bnfplus: multiplier matched an unrecognised fragment")
	}

	synthKey := name + "-" + suffix
	if !synthesized[synthKey] {
		synthesized[synthKey] = true
		switch suffix {
		case "repeated":
			b.Add(synthKey).Repeat(name, patternmatcher.Range(1, patternmatcher.Unbounded))
		case "any":
			b.Add(synthKey).Repeat(name, patternmatcher.Range(0, patternmatcher.Unbounded))
		case "optional":
			b.Add(synthKey).Repeat(name, patternmatcher.Range(0, 1))
		}
	}
	return synthKey
}

func textOf(input []byte, s patternmatcher.Success) string {
	return string(input[s.Begin:s.End])
}

func mustLookup(key fragID) *patternmatcher.Fragment {
	f, ok := grammar().Lookup(key)
	if !ok {
		panic("bnfplus: bootstrap grammar is missing a fragment it should always have")
	}
	return f
}
