package alphabet

import "fmt"

// asciiLimit is the exclusive upper bound of the scanned range (0..126).
const asciiLimit = 127

// registry holds the precomputed built-in classes, indexed by Kind.
// It is written once in init and read-only afterwards.
var registry [Custom]Class

func init() {
	registry[Upper] = scan(Upper, isUpper)
	registry[Lower] = scan(Lower, isLower)
	registry[Letter] = scan(Letter, func(b byte) bool { return isUpper(b) || isLower(b) })
	registry[Digit] = scan(Digit, isDigit)
	registry[Whitespace] = scan(Whitespace, isSpace)
	registry[Symbol] = scan(Symbol, func(b byte) bool {
		return !(isControl(b) || isUpper(b) || isLower(b) || isDigit(b) || isSpace(b))
	})
}

// scan collects every byte in [0, asciiLimit) accepted by pred. Walking the
// range in order makes the result sorted and duplicate-free.
func scan(k Kind, pred func(byte) bool) Class {
	set := make([]byte, 0, asciiLimit)
	for b := 0; b < asciiLimit; b++ {
		if pred(byte(b)) {
			set = append(set, byte(b))
		}
	}
	return newClass(k, set)
}

func isUpper(b byte) bool   { return 'A' <= b && b <= 'Z' }
func isLower(b byte) bool   { return 'a' <= b && b <= 'z' }
func isDigit(b byte) bool   { return '0' <= b && b <= '9' }
func isControl(b byte) bool { return b < 0x20 || b == 0x7f }

// isSpace matches tab, newline, form feed, carriage return and space.
// Vertical tab is not whitespace here; it falls under control.
func isSpace(b byte) bool {
	switch b {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// Of returns the precomputed class for a built-in kind.
// It panics for Custom or an invalid kind; use NewCustom for custom sets.
func Of(k Kind) Class {
	if !k.Builtin() {
		panic(fmt.Sprintf("alphabet: Of(%s): not a built-in class", k))
	}
	return registry[k]
}
