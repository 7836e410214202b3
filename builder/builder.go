// Package builder is a fluent surface over patternmatcher: instead of wiring
// *Fragment pointers together by hand, callers name each piece and refer to
// other pieces (or to single-byte literals) by name, and Finalize resolves
// every reference in one pass.
//
// A builder.Add(key) reserves a slot, the slot is configured with exactly
// one of Literal/Repeat/And/Or/OneOf/NotOf, and Finalize bakes every slot
// into a Catalogue. Forward and mutually-cyclic references between slots are
// fine: Finalize reserves every slot's Fragment address before resolving any
// of them, the same two-phase trick patternmatcher.Catalogue itself uses for
// the same reason.
package builder

import (
	"fmt"

	"github.com/fiskmans/patternmatcher"
	"github.com/zostay/go-std/slices"
)

type mode int

const (
	modeUnknown mode = iota
	modeLiteral
	modeRepeat
	modeSequence
	modeAlternative
	modeOneOf
	modeNotOf
)

func (m mode) String() string {
	switch m {
	case modeLiteral:
		return "Literal"
	case modeRepeat:
		return "Repeat"
	case modeSequence:
		return "And"
	case modeAlternative:
		return "Or"
	case modeOneOf:
		return "OneOf"
	case modeNotOf:
		return "NotOf"
	default:
		return "(unset)"
	}
}

// MissingReferenceError is returned by Finalize for every slot that named a
// key (via Repeat, And, or Or) which no slot in the builder ever declared
// and which is not a single byte.
type MissingReferenceError struct {
	Slot string
	Key  string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("builder: slot %q references undeclared key %q", e.Slot, e.Key)
}

// Slot is one named, not-yet-baked piece of a Builder. Configure it with
// exactly one of Literal, Repeat, And, Or, OneOf or NotOf; calling a second,
// different one is a build-time error reported by Finalize rather than a
// panic, so a caller assembling a grammar from data doesn't need to guard
// every call.
type Slot struct {
	name string
	mode mode

	literal     string
	repeatBase  string
	repeatCount patternmatcher.RepeatCount
	parts       []string
	chars       string

	errs []error
}

func (s *Slot) claim(m mode) bool {
	if s.mode == modeUnknown {
		s.mode = m
		return true
	}
	if s.mode != m {
		s.errs = append(s.errs, fmt.Errorf("builder: slot %q: %s conflicts with already-set %s", s.name, m, s.mode))
		return false
	}
	return true
}

// Literal sets the slot to match text exactly, byte for byte.
func (s *Slot) Literal(text string) *Slot {
	if s.claim(modeLiteral) {
		s.literal = text
	}
	return s
}

// Repeat sets the slot to match the slot named base, repeated per count.
func (s *Slot) Repeat(base string, count patternmatcher.RepeatCount) *Slot {
	if s.claim(modeRepeat) {
		s.repeatBase = base
		s.repeatCount = count
	}
	return s
}

// And sets (or extends) the slot to match each of parts in order, a
// Sequence. Calling And more than once on the same slot appends further
// parts rather than replacing the earlier ones.
func (s *Slot) And(parts ...string) *Slot {
	if s.claim(modeSequence) {
		s.parts = append(s.parts, parts...)
	}
	return s
}

// Or sets (or extends) the slot to try each of parts in order and accept the
// first that matches, an Alternative. Calling Or more than once appends
// further candidates.
func (s *Slot) Or(parts ...string) *Slot {
	if s.claim(modeAlternative) {
		s.parts = append(s.parts, parts...)
	}
	return s
}

// OneOf sets the slot to match a single byte, provided it occurs in chars.
func (s *Slot) OneOf(chars string) *Slot {
	if s.claim(modeOneOf) {
		s.chars = chars
	}
	return s
}

// NotOf sets the slot to match a single byte, provided it does not occur in
// chars.
func (s *Slot) NotOf(chars string) *Slot {
	if s.claim(modeNotOf) {
		s.chars = chars
	}
	return s
}

// Builder accumulates named Slots and bakes them into a patternmatcher
// Catalogue[string] in one Finalize call.
type Builder struct {
	slots map[string]*Slot
	order []string
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{slots: make(map[string]*Slot)}
}

// Add reserves (or, if key was already added, returns) the Slot named key.
// Calling Add twice with the same key yields the same Slot, so a grammar can
// refer to a key before the call that configures it.
func (b *Builder) Add(key string) *Slot {
	if s, ok := b.slots[key]; ok {
		return s
	}
	s := &Slot{name: key}
	b.slots[key] = s
	b.order = append(b.order, key)
	return s
}

// Finalize bakes every added Slot into a fresh Catalogue, keyed by slot
// name. It always returns a usable Catalogue; errs is non-empty if any slot
// was left unconfigured, configured with conflicting modes, or referenced an
// undeclared multi-byte key.
func (b *Builder) Finalize() (*patternmatcher.Catalogue[string], []error) {
	cat := patternmatcher.New[string]()
	var errs []error

	placeholders := make(map[string]*patternmatcher.Fragment, len(b.order))
	for _, key := range b.order {
		ph, err := cat.EmplacePlaceholder(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		placeholders[key] = ph
	}

	resolve := func(slotName, key string) *patternmatcher.Fragment {
		if f, ok := placeholders[key]; ok {
			return f
		}
		if len(key) == 1 {
			return cat.LookupByte(key[0])
		}
		errs = append(errs, &MissingReferenceError{Slot: slotName, Key: key})
		return cat.LookupByte(0)
	}

	for _, key := range b.order {
		slot := b.slots[key]
		errs = append(errs, slot.errs...)

		ph, ok := placeholders[key]
		if !ok {
			continue
		}

		switch slot.mode {
		case modeUnknown:
			errs = append(errs, fmt.Errorf("builder: slot %q was never configured", key))

		case modeLiteral:
			if len(slot.literal) == 1 {
				ph.Define(patternmatcher.NewLiteral(slot.literal[0]))
			} else {
				ph.Define(patternmatcher.NewSequence(cat.BytesOf(slot.literal)...))
			}

		case modeRepeat:
			ph.Define(patternmatcher.NewRepeat(resolve(key, slot.repeatBase), slot.repeatCount))

		case modeSequence:
			children := slices.Map(slot.parts, func(part string) *patternmatcher.Fragment {
				return resolve(key, part)
			})
			ph.Define(patternmatcher.NewSequence(children...))

		case modeAlternative:
			children := slices.Map(slot.parts, func(part string) *patternmatcher.Fragment {
				return resolve(key, part)
			})
			ph.Define(patternmatcher.NewAlternative(children...))

		case modeOneOf:
			ph.Define(patternmatcher.NewAlternative(cat.BytesOf(slot.chars)...))

		case modeNotOf:
			ph.Define(patternmatcher.NewAlternative(cat.BytesNotOf(slot.chars)...))
		}
	}

	return cat, errs
}
