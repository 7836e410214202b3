package patternmatcher

import "iter"

// Success is one node of a match tree: the fragment that produced it, the
// half-open input range [Begin, End) it covered, and its ordered children.
//
// For a Sequence match, children appear in declaration order and chain
// end-to-begin. For an Alternative match there is exactly one child, the
// winning branch, and the outer range equals its range. For a Repeat match,
// children are the successive iterations in input order. For a Literal
// match, Children is empty and End-Begin == 1.
type Success struct {
	Fragment *Fragment
	Begin    int
	End      int
	Children []Success
}

// SearchMode controls how SearchFor treats nesting below a hit.
type SearchMode int

const (
	// SearchTopLevelOnly yields direct children only.
	SearchTopLevelOnly SearchMode = iota
	// SearchRecursive yields every hit, but does not descend below one once
	// found.
	SearchRecursive
	// SearchAll yields every hit regardless of nesting, including hits
	// nested below another hit.
	SearchAll
)

// Find returns the first descendant of s (not s itself) whose Fragment is f,
// visited in depth-first pre-order.
func (s Success) Find(f *Fragment) (Success, bool) {
	for _, child := range s.Children {
		if child.Fragment == f {
			return child, true
		}
		if hit, ok := child.Find(f); ok {
			return hit, true
		}
	}
	return Success{}, false
}

// SearchFor returns a lazy sequence of descendants of s whose Fragment is f,
// in the order described by mode.
func (s Success) SearchFor(f *Fragment, mode SearchMode) iter.Seq[Success] {
	return func(yield func(Success) bool) {
		switch mode {
		case SearchTopLevelOnly:
			for _, child := range s.Children {
				if child.Fragment == f {
					if !yield(child) {
						return
					}
				}
			}
		case SearchRecursive:
			if !searchRecursive(s.Children, f, yield) {
				return
			}
		case SearchAll:
			if !searchAll(s.Children, f, yield) {
				return
			}
		}
	}
}

func searchRecursive(children []Success, f *Fragment, yield func(Success) bool) bool {
	for _, child := range children {
		if child.Fragment == f {
			if !yield(child) {
				return false
			}
			continue
		}
		if !searchRecursive(child.Children, f, yield) {
			return false
		}
	}
	return true
}

func searchAll(children []Success, f *Fragment, yield func(Success) bool) bool {
	for _, child := range children {
		if child.Fragment == f {
			if !yield(child) {
				return false
			}
		}
		if !searchAll(child.Children, f, yield) {
			return false
		}
	}
	return true
}
