// SPDX-License-Identifier: MIT
// Package: randstr
//
// options.go — functional options accepted by New.
//
// Contract:
//   • Options mutate a fresh Spec in order; the last one wins.
//   • Option constructors validate and PANIC on meaningless inputs.
//     Compilation itself reports problems as errors, never panics (see TryBuild).
//   • Determinism is explicit: seed via WithSeed or inject via WithRand.

package randstr

import (
	"fmt"

	"github.com/katalvlaran/randstr/rng"
)

// Option customizes a Spec at construction time.
type Option func(*Spec)

// WithRand injects the random source the compiled Generator will own.
// Panics on nil; omit the option to get rng.Default().
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("randstr: WithRand(nil)")
	}
	return func(s *Spec) {
		s.src = src
	}
}

// WithSeed injects a deterministic *rand.Rand seeded with seed
// (seed==0 uses the package default seed, see rng.NewSeeded).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(s *Spec) {
		s.src = rng.NewSeeded(seed)
	}
}

// WithLength sets the output length. Panics if n < 0.
func WithLength(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("randstr: WithLength(%d): length must be non-negative", n))
	}
	return func(s *Spec) {
		s.length = n
	}
}
