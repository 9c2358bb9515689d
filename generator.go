package randstr

import (
	"slices"

	"github.com/katalvlaran/randstr/alphabet"
	"github.com/katalvlaran/randstr/rng"
)

// Generator produces random strings from a compiled Spec.
//
// The alphabet and mandatory classes are immutable after TryBuild; the random
// source is owned by the Generator and advanced on every call. A Generator is
// therefore NOT safe for concurrent use: give each goroutine its own (Clone)
// or wrap a shared one with NewLocked.
type Generator struct {
	alphabet  []byte           // sorted, deduplicated, non-empty
	mandatory []alphabet.Class // compile order; len(mandatory) <= length
	length    int
	src       rng.Source
}

// Generate returns a fresh random string of exactly Len() bytes.
//
// Algorithm:
//  1. Draw Len() bytes independently and uniformly from the alphabet.
//  2. If every mandatory class already has a byte in the sample, return it
//     unchanged. This is the common path: one linear pass, no retries.
//  3. Otherwise walk the mandatory classes in compile order. A satisfied class
//     pins one witness position. An unsatisfied class overwrites a uniformly
//     chosen unpinned position with a byte drawn from its own set, and pins it.
//     Pinned positions never exceed the number of classes seen so far, which is
//     below Len(), so a free position always exists and no earlier guarantee is
//     ever undone.
//  4. Shuffle the whole buffer so patched positions carry no positional bias.
//
// Complexity: O(Len()·M) for M mandatory classes; Generate never fails.
func (g *Generator) Generate() string {
	return string(g.GenerateBytes())
}

// GenerateBytes is Generate without the string conversion. The returned slice
// belongs to the caller.
func (g *Generator) GenerateBytes() []byte {
	out := make([]byte, g.length)
	for i := range out {
		out[i] = rng.Choose(g.src, g.alphabet)
	}

	if g.satisfied(out) {
		return out
	}

	g.patch(out)
	rng.ShuffleBytes(g.src, out)
	return out
}

// satisfied reports whether every mandatory class occurs in out.
func (g *Generator) satisfied(out []byte) bool {
	for _, c := range g.mandatory {
		if !c.ContainsAny(out) {
			return false
		}
	}
	return true
}

// patch places one representative of every missing mandatory class into out
// without evicting the witness of any class handled before it.
func (g *Generator) patch(out []byte) {
	var (
		pinned = make([]bool, len(out))
		free   = make([]int, 0, len(out))
	)
	for _, c := range g.mandatory {
		if at := witness(c, out, pinned); at >= 0 {
			pinned[at] = true
			continue
		}

		free = free[:0]
		for i, p := range pinned {
			if !p {
				free = append(free, i)
			}
		}
		at := free[g.src.Intn(len(free))]
		out[at] = c.At(g.src.Intn(c.Len()))
		pinned[at] = true
	}
}

// witness returns a position of out holding a byte of c, preferring one that
// is already pinned so pins are shared between overlapping classes.
// It returns -1 when c does not occur in out.
func witness(c alphabet.Class, out []byte, pinned []bool) int {
	first := -1
	for i, b := range out {
		if !c.Contains(b) {
			continue
		}
		if pinned[i] {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

// Len returns the length of every generated string.
func (g *Generator) Len() int { return g.length }

// Alphabet returns a copy of the sorted, deduplicated sampling alphabet.
func (g *Generator) Alphabet() []byte { return slices.Clone(g.alphabet) }

// MandatoryCount returns the number of mandatory classes.
func (g *Generator) MandatoryCount() int { return len(g.mandatory) }

// Clone returns a Generator sharing the compiled alphabet but owning an
// independent random stream derived from g's source and stream (see
// rng.Derive). Deriving advances g's source, so call Clone from the goroutine
// that owns g, then hand the clones out.
func (g *Generator) Clone(stream uint64) *Generator {
	return &Generator{
		alphabet:  g.alphabet,
		mandatory: g.mandatory,
		length:    g.length,
		src:       rng.Derive(g.src, stream),
	}
}
