// SPDX-License-Identifier: MIT
// Package: randstr/alphabet
//
// kind.go — the Kind enum naming every character class.
//
// Contract:
//   • Kind values are stable; their order is the compile order used by the
//     generator when it collects mandatory classes.
//   • String/ParseKind are exact inverses for all valid kinds.
//   • Kind implements encoding.TextMarshaler/TextUnmarshaler so YAML, JSON
//     and mapstructure decoders can carry it without custom hooks.

package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a character class.
type Kind uint8

const (
	// Upper is 'A'..'Z'.
	Upper Kind = iota
	// Lower is 'a'..'z'.
	Lower
	// Letter is Upper ∪ Lower. It is a distinct class, not implied by
	// selecting both Upper and Lower.
	Letter
	// Digit is '0'..'9'.
	Digit
	// Whitespace is tab, newline, form feed, carriage return and space.
	Whitespace
	// Symbol is every printable byte that is neither alphanumeric nor whitespace.
	Symbol
	// Custom is a caller-supplied set of bytes.
	Custom

	numKinds
)

// ErrUnknownKind is returned by ParseKind and UnmarshalText for names that do
// not match any Kind.
var ErrUnknownKind = errors.New("alphabet: unknown class kind")

var kindNames = [numKinds]string{
	Upper:      "upper",
	Lower:      "lower",
	Letter:     "letter",
	Digit:      "digit",
	Whitespace: "whitespace",
	Symbol:     "symbol",
	Custom:     "custom",
}

// builtinOrder is the fixed compile order for built-in classes.
var builtinOrder = []Kind{Upper, Lower, Letter, Digit, Whitespace, Symbol}

// Kinds returns the six built-in kinds in compile order
// (upper, lower, letter, digit, whitespace, symbol).
func Kinds() []Kind {
	out := make([]Kind, len(builtinOrder))
	copy(out, builtinOrder)
	return out
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < numKinds }

// Builtin reports whether k names a precomputed class (everything but Custom).
func (k Kind) Builtin() bool { return k < Custom }

// ParseKind maps a case-insensitive name to its Kind.
// Surrounding whitespace is ignored; "letters", "digits", "symbols" and
// "uppercase"/"lowercase" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "uppercase":
		return Upper, nil
	case "lowercase":
		return Lower, nil
	case "letters":
		return Letter, nil
	case "digits", "number", "numbers":
		return Digit, nil
	case "symbols":
		return Symbol, nil
	case "space", "spaces":
		return Whitespace, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(k), ErrUnknownKind)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
