package patternmatcher

// MatchContext is the in-flight matching state for one fragment: where it
// started, where its cursor currently sits, how far along its own internal
// progress it is (next child to try, or repetitions completed so far), and
// the child Success values it has accumulated.
type MatchContext struct {
	Fragment   *Fragment
	Begin      int
	At         int
	Index      int
	SubMatches []Success
}

// Begin returns the initial frame for matching this fragment starting at
// input offset at.
func (f *Fragment) Begin(at int) MatchContext {
	return MatchContext{
		Fragment: f,
		Begin:    at,
		At:       at,
		Index:    0,
	}
}
