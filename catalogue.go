package patternmatcher

import (
	"errors"
	"fmt"

	"github.com/zostay/go-std/slices"
)

// ErrDuplicateKey is wrapped into the error Emplace returns when a key has
// already been used.
var ErrDuplicateKey = errors.New("patternmatcher: duplicate catalogue key")

// Catalogue owns a named collection of fragments plus a pre-built array of
// 256 single-byte literals, one per byte value. It is grown with Emplace,
// then handed to Match read-only; mutating it concurrently with a Match call
// is unsupported.
type Catalogue[K comparable] struct {
	fragments map[K]*Fragment
	builtins  [256]Fragment
}

// New returns an empty Catalogue with its 256 byte literals pre-built.
func New[K comparable]() *Catalogue[K] {
	c := &Catalogue[K]{fragments: make(map[K]*Fragment)}
	for b := 0; b < 256; b++ {
		c.builtins[b] = Fragment{kind: KindLiteral, literal: byte(b)}
	}
	return c
}

// Emplace stores f, already built by one of the New* constructors, under
// key. It returns ErrDuplicateKey if key has already been used.
func (c *Catalogue[K]) Emplace(key K, f *Fragment) (*Fragment, error) {
	if _, exists := c.fragments[key]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	c.fragments[key] = f
	return f, nil
}

// EmplacePlaceholder reserves key with an empty, KindUnset Fragment and
// returns its address. Use it when a fragment's children reference other
// keys that may not be built yet (forward or mutually-cyclic references);
// fill the reserved Fragment in later with Define. It returns
// ErrDuplicateKey if key has already been used.
func (c *Catalogue[K]) EmplacePlaceholder(key K) (*Fragment, error) {
	if _, exists := c.fragments[key]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	f := &Fragment{}
	c.fragments[key] = f
	return f, nil
}

// Lookup returns the fragment stored under key, if any.
func (c *Catalogue[K]) Lookup(key K) (*Fragment, bool) {
	f, ok := c.fragments[key]
	return f, ok
}

// Keys returns every key Emplace/EmplacePlaceholder has stored, in no
// particular order.
func (c *Catalogue[K]) Keys() []K {
	keys := make([]K, 0, len(c.fragments))
	for k := range c.fragments {
		keys = append(keys, k)
	}
	return keys
}

// LookupByte returns the built-in literal fragment for b. It is always
// present.
func (c *Catalogue[K]) LookupByte(b byte) *Fragment {
	return &c.builtins[b]
}

// BytesOf returns, for each byte of s, that byte's built-in literal
// fragment, in order.
func (c *Catalogue[K]) BytesOf(s string) []*Fragment {
	return slices.Map([]byte(s), func(b byte) *Fragment {
		return c.LookupByte(b)
	})
}

// BytesNotOf returns every built-in literal fragment except those for bytes
// occurring in s, in byte-value order.
func (c *Catalogue[K]) BytesNotOf(s string) []*Fragment {
	exclude := [256]bool{}
	for _, b := range []byte(s) {
		exclude[b] = true
	}

	out := make([]*Fragment, 0, 256-len(s))
	for b := 0; b < 256; b++ {
		if !exclude[b] {
			out = append(out, c.LookupByte(byte(b)))
		}
	}
	return out
}

// Match looks up rootKey and matches it against input, applying
// DefaultDepthBudget/DefaultStepBudget unless overridden by opts. It returns
// (Success{}, false) if rootKey is unknown.
func (c *Catalogue[K]) Match(rootKey K, input []byte, opts ...Option) (Success, bool) {
	root, ok := c.Lookup(rootKey)
	if !ok {
		return Success{}, false
	}
	return Match(root, input, opts...)
}
