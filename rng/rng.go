// Package rng defines the random-source strategy consumed by the generator
// and ships the sources the library uses by default.
//
// Goals:
//   - Pluggability: any type with Intn and Shuffle is a Source; *math/rand.Rand
//     satisfies it as-is.
//   - Determinism on request: NewSeeded and Derive give reproducible streams.
//   - Safe default: Default returns a crypto/rand backed source.
//
// Concurrency:
//   - A Source is NOT assumed goroutine-safe. *rand.Rand is not; Crypto is.
//   - Use Derive to create independent streams for workers instead of sharing one.
package rng

import (
	"math"
	"math/rand"
)

// Source is a uniform random source.
//
// Intn returns a value in [0, n) and may panic if n <= 0.
// Shuffle pseudo-randomizes the order of n elements through swap.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewSeeded returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSeeded(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Default returns the process-level source used when none is injected.
func Default() Source { return Crypto{} }

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring stream ids decorrelate.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive returns a source independent of base, identified by stream.
//
// A Crypto base yields another Crypto (there is no state to split). Any other
// base is consumed twice to build a 62-bit parent seed, which is then mixed
// with stream; the result is a fresh *rand.Rand. A nil base uses defaultSeed
// as the parent.
//
// Call during setup, not in hot loops.
func Derive(base Source, stream uint64) Source {
	switch base.(type) {
	case Crypto, *Crypto:
		return Crypto{}
	case nil:
		return rand.New(rand.NewSource(deriveSeed(defaultSeed, stream)))
	}
	hi := int64(base.Intn(math.MaxInt32))
	lo := int64(base.Intn(math.MaxInt32))
	return rand.New(rand.NewSource(deriveSeed(hi<<31|lo, stream)))
}

// Choose returns one element of set drawn uniformly with src.
// It panics if set is empty.
func Choose(src Source, set []byte) byte {
	return set[src.Intn(len(set))]
}

// ShuffleBytes permutes b in place using src.
//
// Complexity: O(len(b)).
func ShuffleBytes(src Source, b []byte) {
	if len(b) <= 1 {
		return
	}
	src.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
}
