package patternmatcher

// Kind tags which of the four fragment variants a Fragment is.
type Kind byte

const (
	// KindUnset is the zero value of Kind: a Fragment that has been
	// reserved (via Catalogue.EmplacePlaceholder, to fix its address for
	// forward or cyclic references) but not yet Define'd. It is distinct
	// from KindLiteral precisely so that an Alternative's fast-path lookup
	// table, built against a not-yet-resolved child, treats that child as
	// non-literal rather than misreading its zero-valued literal byte.
	KindUnset Kind = iota
	KindLiteral
	KindRepeat
	KindSequence
	KindAlternative
)

// Fragment is one node of the grammar graph. It is a tagged variant, not an
// interface-per-kind hierarchy: Resume dispatches on Kind with a plain
// switch, which keeps the hot loop free of virtual-call overhead and matches
// how the four variants are actually related (mutually exclusive payloads,
// no shared behaviour beyond Resume itself).
//
// A Fragment is immutable once built: its Children, Literal byte and
// RepeatCount never change after construction, and its Alternative fast-path
// lookup table (built once, at construction) assumes that.
type Fragment struct {
	kind     Kind
	literal  byte
	count    RepeatCount
	children []*Fragment

	// lut and lutPortion accelerate KindAlternative: lut[b] is the first
	// child among the longest all-literal prefix of children whose literal
	// byte is b, or nil. lutPortion is the length of that prefix.
	lut        *[256]*Fragment
	lutPortion int
}

// NewLiteral returns a Fragment matching exactly one input byte equal to b.
func NewLiteral(b byte) *Fragment {
	return &Fragment{kind: KindLiteral, literal: b}
}

// NewRepeat returns a Fragment matching child greedily between count.Min and
// count.Max times.
func NewRepeat(child *Fragment, count RepeatCount) *Fragment {
	return &Fragment{kind: KindRepeat, children: []*Fragment{child}, count: count}
}

// NewSequence returns a Fragment matching each of children in order, the
// next starting where the previous ended.
func NewSequence(children ...*Fragment) *Fragment {
	return &Fragment{kind: KindSequence, children: append([]*Fragment(nil), children...)}
}

// NewAlternative returns a Fragment trying each of children in declared
// order and accepting the first that matches. children must be non-empty.
func NewAlternative(children ...*Fragment) *Fragment {
	f := &Fragment{kind: KindAlternative, children: append([]*Fragment(nil), children...)}
	f.buildLUT()
	return f
}

// Define fills an empty Fragment obtained from Catalogue.EmplacePlaceholder
// with def's shape, in place, preserving f's address so that pointers
// already captured by other fragments (forward or cyclic references) see
// the fully built fragment from this point on.
func (f *Fragment) Define(def *Fragment) {
	*f = *def
}

// Kind reports which variant f is.
func (f *Fragment) Kind() Kind { return f.kind }

// Children returns f's child fragments (empty for KindLiteral, one element
// for KindRepeat).
func (f *Fragment) Children() []*Fragment { return f.children }

// Literal returns the byte a KindLiteral fragment matches. It is meaningless
// for any other kind.
func (f *Fragment) Literal() byte { return f.literal }

func (f *Fragment) buildLUT() {
	var lut [256]*Fragment
	portion := 0
	for _, child := range f.children {
		if child.kind != KindLiteral {
			break
		}
		if lut[child.literal] == nil {
			lut[child.literal] = child
		}
		portion++
	}
	f.lut = &lut
	f.lutPortion = portion
}

// Resume advances ctx by one step, given the outcome of the last child frame
// it requested (or resultNone on the frame's very first call), and reports
// whether the fragment succeeded, failed, or wants another child matched
// first (in which case the new frame to push is in the returned result).
func (f *Fragment) Resume(ctx *MatchContext, last result, input []byte) result {
	switch f.kind {
	case KindLiteral:
		return f.resumeLiteral(ctx, input)
	case KindSequence:
		return f.resumeSequence(ctx, last)
	case KindAlternative:
		return f.resumeAlternative(ctx, last, input)
	case KindRepeat:
		return f.resumeRepeat(ctx, last)
	default:
		panic("patternmatcher: fragment with unknown kind")
	}
}

func (f *Fragment) resumeLiteral(ctx *MatchContext, input []byte) result {
	if ctx.At == len(input) {
		return failureResult()
	}
	if input[ctx.At] == f.literal {
		return successResult(Success{Fragment: f, Begin: ctx.At, End: ctx.At + 1})
	}
	return failureResult()
}

func (f *Fragment) resumeSequence(ctx *MatchContext, last result) result {
	switch last.kind {
	case resultFailure:
		return failureResult()
	case resultSuccess:
		ctx.SubMatches = append(ctx.SubMatches, last.success)
		ctx.At = last.success.End
	case resultNone:
		// first call for this frame, nothing to absorb yet
	default:
		panic("patternmatcher: sequence resumed with an InProgress result")
	}

	if ctx.Index == len(f.children) {
		return successResult(Success{Fragment: f, Begin: ctx.Begin, End: ctx.At, Children: ctx.SubMatches})
	}

	next := f.children[ctx.Index]
	ctx.Index++
	return inProgressResult(next.Begin(ctx.At))
}

func (f *Fragment) resumeAlternative(ctx *MatchContext, last result, input []byte) result {
	if ctx.Index == 0 && f.lutPortion > 0 {
		if ctx.At != len(input) {
			if hit := f.lut[input[ctx.At]]; hit != nil {
				lit := Success{Fragment: hit, Begin: ctx.At, End: ctx.At + 1}
				return successResult(Success{Fragment: f, Begin: ctx.At, End: ctx.At + 1, Children: []Success{lit}})
			}
		}
		ctx.Index = f.lutPortion
	}

	switch last.kind {
	case resultFailure, resultNone:
		// keep trying children
	case resultSuccess:
		sub := last.success
		return successResult(Success{Fragment: f, Begin: sub.Begin, End: sub.End, Children: []Success{sub}})
	default:
		panic("patternmatcher: alternative resumed with an InProgress result")
	}

	if ctx.Index == len(f.children) {
		return failureResult()
	}

	next := f.children[ctx.Index]
	ctx.Index++
	return inProgressResult(next.Begin(ctx.Begin))
}

func (f *Fragment) resumeRepeat(ctx *MatchContext, last result) result {
	switch last.kind {
	case resultFailure:
		if ctx.Index > f.count.Min {
			return successResult(Success{Fragment: f, Begin: ctx.Begin, End: ctx.At, Children: ctx.SubMatches})
		}
		return failureResult()
	case resultSuccess:
		ctx.SubMatches = append(ctx.SubMatches, last.success)
		ctx.At = last.success.End
	case resultNone:
		// first call for this frame
	default:
		panic("patternmatcher: repeat resumed with an InProgress result")
	}

	if ctx.Index == f.count.Max {
		return successResult(Success{Fragment: f, Begin: ctx.Begin, End: ctx.At, Children: ctx.SubMatches})
	}

	ctx.Index++
	child := f.children[0]
	return inProgressResult(child.Begin(ctx.At))
}
