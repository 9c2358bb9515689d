// Package randstr generates random strings from configurable character
// classes, with optional "at least one of this class" constraints.
//
// 🚀 What is randstr?
//
//	A small, dependency-light library for password- and token-like strings:
//		• Built-in ASCII classes: upper, lower, letter, digit, symbol, whitespace
//		• A custom class from any caller-supplied characters
//		• Mandatory classes: every output holds at least one of each
//		• A pluggable random source (crypto/rand by default, seedable for tests)
//
// ✨ Why randstr?
//
//   - Compile once, generate many: Spec → TryBuild → Generator.Generate
//   - All misconfiguration is reported at compile time (ErrNoAlphabet, ErrTooShort);
//     Generate itself cannot fail
//   - No retry loops: constraints are patched in only when missing
//   - Serializable configuration (Config) for YAML files and the CLI
//
// Under the hood the module is organized as:
//
//	alphabet/    precomputed character classes, Kind enum
//	rng/         random-source strategy (Source), crypto and seeded sources
//	cmd/randstr/ command-line front end
//	examples/    runnable scenarios
//
// Quick example:
//
//	g, err := randstr.New().All().MustDigit().Length(20).TryBuild()
//	if err != nil {
//		// errors.Is(err, randstr.ErrNoAlphabet) / randstr.ErrTooShort
//	}
//	fmt.Println(g.Generate())
//
// Concurrency: a Generator owns mutable random state. Use one per goroutine
// (Generator.Clone) or share one through NewLocked.
//
// Randomness quality is the caller's choice: the default source is crypto/rand,
// but any rng.Source, including a seeded *math/rand.Rand, is accepted.
//
//	go get github.com/katalvlaran/randstr
package randstr
