// Package id provides a small auto-incrementing key type for catalogues
// that would rather be keyed by an enum-like identifier than by a string.
package id

// ID is an opaque, comparable catalogue key.
type ID int

// None is the zero ID. It is never returned by Next.
const None ID = 0

var last = None

// Next returns a fresh ID, distinct from every ID returned before it.
func Next() ID {
	last++
	return last
}
