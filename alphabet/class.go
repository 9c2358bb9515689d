package alphabet

import (
	"slices"
	"strconv"
)

// Class is an immutable set of byte values tagged with its Kind.
//
// Built-in classes are sorted and deduplicated. Custom classes keep the bytes
// exactly as supplied, so a byte listed twice is twice as likely to be drawn
// when the class is used as a mandatory set.
//
// The zero Class is empty; obtain classes from Of or NewCustom.
type Class struct {
	kind  Kind
	set   []byte    // never mutated after construction
	index [256]bool // membership table for O(1) Contains
}

// NewCustom returns a Custom class holding the bytes of chars verbatim.
// An empty string yields an empty class.
//
// Complexity: O(len(chars)) time and space.
func NewCustom(chars string) Class {
	return newClass(Custom, []byte(chars))
}

// newClass takes ownership of set.
func newClass(k Kind, set []byte) Class {
	c := Class{kind: k, set: set}
	for _, b := range set {
		c.index[b] = true
	}
	return c
}

// Kind returns the class kind.
func (c Class) Kind() Kind { return c.kind }

// Len returns the number of bytes in the class, duplicates included.
func (c Class) Len() int { return len(c.set) }

// Empty reports whether the class holds no bytes.
func (c Class) Empty() bool { return len(c.set) == 0 }

// At returns the i-th byte. It panics when i is out of range, like slice indexing.
func (c Class) At(i int) byte { return c.set[i] }

// Bytes returns a copy of the class bytes.
func (c Class) Bytes() []byte { return slices.Clone(c.set) }

// Contains reports whether b belongs to the class.
func (c Class) Contains(b byte) bool { return c.index[b] }

// ContainsAny reports whether any byte of p belongs to the class.
//
// Complexity: O(len(p)).
func (c Class) ContainsAny(p []byte) bool {
	for _, b := range p {
		if c.index[b] {
			return true
		}
	}
	return false
}

// IndexAny returns the index of the first byte in p that belongs to the
// class, or -1.
func (c Class) IndexAny(p []byte) int {
	for i, b := range p {
		if c.index[b] {
			return i
		}
	}
	return -1
}

// String renders the class as "<kind>[<quoted bytes>]", e.g. digit["0123456789"].
func (c Class) String() string {
	return c.kind.String() + "[" + strconv.Quote(string(c.set)) + "]"
}

// Merge concatenates the bytes of every class, then sorts and deduplicates
// the result. Merge of no classes (or only empty ones) returns an empty,
// non-nil slice.
//
// Complexity: O(N log N) for N total input bytes.
func Merge(classes ...Class) []byte {
	n := 0
	for _, c := range classes {
		n += len(c.set)
	}
	out := make([]byte, 0, n)
	for _, c := range classes {
		out = append(out, c.set...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
