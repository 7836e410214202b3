package patternmatcher

import "math"

// RepeatCount bounds how many times a Repeat fragment's child must and may
// match. Unbounded stands in for "no upper limit" without overflowing when
// compared against an iteration counter.
type RepeatCount struct {
	Min int
	Max int
}

// Unbounded is the largest representable repeat count, used as Max to mean
// "no upper limit".
const Unbounded = math.MaxInt

// Exactly returns a RepeatCount that matches its child exactly k times.
func Exactly(k int) RepeatCount {
	return RepeatCount{Min: k, Max: k}
}

// Range returns a RepeatCount that matches its child between min and max
// times, inclusive. Pass Unbounded for max to mean "no upper limit".
func Range(min, max int) RepeatCount {
	return RepeatCount{Min: min, Max: max}
}
