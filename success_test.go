package patternmatcher_test

import (
	"testing"

	"github.com/fiskmans/patternmatcher"
)

func TestFindReturnsFirstDescendant(t *testing.T) {
	digit := patternmatcher.NewAlternative(catDigits()...)
	pair := patternmatcher.NewSequence(digit, digit)

	got, ok := patternmatcher.Match(pair, []byte("42"))
	if !ok {
		t.Fatalf("expected match")
	}

	found, ok := got.Find(digit)
	if !ok {
		t.Fatalf("expected to find a digit node")
	}
	if found.Begin != 0 || found.End != 1 {
		t.Fatalf("expected the first digit match, got [%d:%d]", found.Begin, found.End)
	}
}

func TestSearchForTopLevelOnly(t *testing.T) {
	digit := patternmatcher.NewAlternative(catDigits()...)
	triple := patternmatcher.NewSequence(digit, digit, digit)

	got, ok := patternmatcher.Match(triple, []byte("123"))
	if !ok {
		t.Fatalf("expected match")
	}

	var hits []patternmatcher.Success
	for hit := range got.SearchFor(digit, patternmatcher.SearchTopLevelOnly) {
		hits = append(hits, hit)
	}
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
}

// recursiveItem builds "item := digit | '(' item ')'", a self-nesting
// grammar via the same forward-reference-through-a-placeholder mechanism
// Catalogue.EmplacePlaceholder/Define uses, so that "item" can genuinely
// occur nested below another "item" match.
func recursiveItem() *patternmatcher.Fragment {
	item := &patternmatcher.Fragment{}
	digit := patternmatcher.NewAlternative(catDigits()...)
	parenWrapped := patternmatcher.NewSequence(patternmatcher.NewLiteral('('), item, patternmatcher.NewLiteral(')'))
	item.Define(patternmatcher.NewAlternative(digit, parenWrapped))
	return item
}

func TestSearchForRecursiveDoesNotDescendBelowAHit(t *testing.T) {
	item := recursiveItem()

	got, ok := patternmatcher.Match(item, []byte("((1))"))
	if !ok {
		t.Fatalf("expected match")
	}

	var hits []patternmatcher.Success
	for hit := range got.SearchFor(item, patternmatcher.SearchRecursive) {
		hits = append(hits, hit)
	}
	// "item" occurs nested three deep ("((1))" is item("(" item("(" item("1") ")") ")")),
	// but SearchRecursive stops descending as soon as it yields a hit, so
	// only the outermost nested occurrence below the root is reported.
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Begin != 1 || hits[0].End != 4 {
		t.Fatalf("expected the hit to span \"(1)\" at [1:4], got [%d:%d]", hits[0].Begin, hits[0].End)
	}
}

func TestSearchForAllFindsEveryNestedOccurrence(t *testing.T) {
	item := recursiveItem()

	got, ok := patternmatcher.Match(item, []byte("((1))"))
	if !ok {
		t.Fatalf("expected match")
	}

	var hits []patternmatcher.Success
	for hit := range got.SearchFor(item, patternmatcher.SearchAll) {
		hits = append(hits, hit)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2 (the nested \"(1)\" and the innermost \"1\")", len(hits))
	}
}

func TestSearchForAllYieldsEveryNestingLevel(t *testing.T) {
	byteFrag := patternmatcher.NewLiteral('a')
	inner := patternmatcher.NewSequence(byteFrag, byteFrag)
	outer := patternmatcher.NewSequence(inner, byteFrag)

	got, ok := patternmatcher.Match(outer, []byte("aaa"))
	if !ok {
		t.Fatalf("expected match")
	}

	var hits []patternmatcher.Success
	for hit := range got.SearchFor(byteFrag, patternmatcher.SearchAll) {
		hits = append(hits, hit)
	}
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3 (every literal byte, regardless of nesting)", len(hits))
	}
}

func catDigits() []*patternmatcher.Fragment {
	digits := make([]*patternmatcher.Fragment, 10)
	for i := range digits {
		digits[i] = patternmatcher.NewLiteral(byte('0' + i))
	}
	return digits
}
