// Package alphabet holds the built-in ASCII character classes used by the
// random string generator, plus the Class value type shared by all of them.
//
// 🚀 What is a Class?
//
//	A Class is an immutable byte set with a Kind tag. The six built-ins are
//	computed once at package initialization from simple predicates over the
//	ASCII range 0..126 and are shared read-only by every caller:
//	  • Lower      'a'..'z'
//	  • Upper      'A'..'Z'
//	  • Letter     Lower ∪ Upper
//	  • Digit      '0'..'9'
//	  • Whitespace '\t' '\n' '\f' '\r' ' ' (no vertical tab)
//	  • Symbol     printable, not alphanumeric, not whitespace, not control
//
// ✨ Key features:
//   - no runtime recomputation: tables are frozen after init()
//   - exported accessors return copies; a Class cannot be mutated
//   - Custom classes keep the caller's bytes verbatim (no sort, no dedup)
//   - Kind round-trips through text codecs (YAML, viper, flags)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/randstr/alphabet"
//
//	digits := alphabet.Of(alphabet.Digit)
//	fmt.Println(digits.Len())         // 10
//	fmt.Println(digits.Contains('7')) // true
//
//	pool := alphabet.Merge(alphabet.Of(alphabet.Upper), alphabet.Of(alphabet.Letter))
//	fmt.Println(len(pool))            // 52, sorted and deduplicated
//
// Performance:
//
//   - Contains: O(1) via a 256-entry membership table
//   - Merge:    O(N log N) for N total input bytes
package alphabet
