package randstr

import (
	"github.com/katalvlaran/randstr/alphabet"
	"github.com/katalvlaran/randstr/rng"
)

// Spec accumulates the configuration of a Generator.
//
// Every mutator returns the receiver so calls chain:
//
//	g, err := randstr.New().All().MustDigit().Length(16).TryBuild()
//
// Enabling is idempotent: Upper().Upper() equals Upper(). Must* setters also
// enable their class, so a class is never mandatory without being enabled.
// A Spec is not safe for concurrent mutation; it is meant to be built, compiled
// and discarded.
type Spec struct {
	enabled   [alphabet.Custom]bool     // built-ins, indexed by Kind
	mandatory [alphabet.Custom + 1]bool // built-ins and custom, indexed by Kind
	custom    *string                   // nil means the custom class is disabled
	length    int
	src       rng.Source // nil means rng.Default() at compile time
}

// New returns an empty Spec with options applied in order.
func New(opts ...Option) *Spec {
	s := &Spec{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spec) enable(k alphabet.Kind) *Spec {
	s.enabled[k] = true
	return s
}

func (s *Spec) must(k alphabet.Kind) *Spec {
	s.mandatory[k] = true
	return s.enable(k)
}

// Upper allows uppercase letters.
func (s *Spec) Upper() *Spec { return s.enable(alphabet.Upper) }

// Lower allows lowercase letters.
func (s *Spec) Lower() *Spec { return s.enable(alphabet.Lower) }

// Letter allows uppercase and lowercase letters as one class.
func (s *Spec) Letter() *Spec { return s.enable(alphabet.Letter) }

// Digit allows digits.
func (s *Spec) Digit() *Spec { return s.enable(alphabet.Digit) }

// Symbol allows ASCII punctuation.
func (s *Spec) Symbol() *Spec { return s.enable(alphabet.Symbol) }

// Whitespace allows ASCII whitespace.
func (s *Spec) Whitespace() *Spec { return s.enable(alphabet.Whitespace) }

// Custom allows the bytes of chars, replacing any previous custom set.
// The custom class is merged into the alphabet at compile time; it is not
// deduplicated against the built-ins here.
func (s *Spec) Custom(chars string) *Spec {
	s.custom = &chars
	return s
}

// All allows letters, digits and symbols.
func (s *Spec) All() *Spec { return s.Letter().Digit().Symbol() }

// MustUpper requires at least one uppercase letter.
func (s *Spec) MustUpper() *Spec { return s.must(alphabet.Upper) }

// MustLower requires at least one lowercase letter.
func (s *Spec) MustLower() *Spec { return s.must(alphabet.Lower) }

// MustLetter requires at least one letter.
func (s *Spec) MustLetter() *Spec { return s.must(alphabet.Letter) }

// MustDigit requires at least one digit.
func (s *Spec) MustDigit() *Spec { return s.must(alphabet.Digit) }

// MustSymbol requires at least one symbol.
func (s *Spec) MustSymbol() *Spec { return s.must(alphabet.Symbol) }

// MustWhitespace requires at least one whitespace byte.
func (s *Spec) MustWhitespace() *Spec { return s.must(alphabet.Whitespace) }

// MustCustom sets the custom class to chars and requires at least one of its bytes.
func (s *Spec) MustCustom(chars string) *Spec {
	s.mandatory[alphabet.Custom] = true
	return s.Custom(chars)
}

// Enable turns on class k; Custom is ignored since it needs a character set.
func (s *Spec) Enable(k alphabet.Kind) *Spec {
	if k.Builtin() {
		s.enable(k)
	}
	return s
}

// Must marks built-in class k mandatory; Custom is ignored, use MustCustom.
func (s *Spec) Must(k alphabet.Kind) *Spec {
	if k.Builtin() {
		s.must(k)
	}
	return s
}

// Length sets the number of characters every generated string has.
// A negative value makes TryBuild fail with ErrTooShort.
func (s *Spec) Length(n int) *Spec {
	s.length = n
	return s
}

// Rand injects the random source; nil restores the default.
func (s *Spec) Rand(src rng.Source) *Spec {
	s.src = src
	return s
}

// Enabled reports whether class k is enabled.
func (s *Spec) Enabled(k alphabet.Kind) bool {
	if k == alphabet.Custom {
		return s.custom != nil
	}
	return k.Builtin() && s.enabled[k]
}

// Mandatory reports whether class k is mandatory.
func (s *Spec) Mandatory(k alphabet.Kind) bool {
	return k.Valid() && s.mandatory[k]
}

// Clone returns an independent copy. The random source is shared, not copied.
func (s *Spec) Clone() *Spec {
	c := *s
	if s.custom != nil {
		chars := *s.custom
		c.custom = &chars
	}
	return &c
}

// classes returns the enabled classes in compile order, custom last.
func (s *Spec) classes() []alphabet.Class {
	out := make([]alphabet.Class, 0, len(s.enabled)+1)
	for _, k := range alphabet.Kinds() {
		if s.enabled[k] {
			out = append(out, alphabet.Of(k))
		}
	}
	if s.custom != nil {
		out = append(out, alphabet.NewCustom(*s.custom))
	}
	return out
}

// TryBuild validates the Spec and compiles it into a Generator.
//
// Steps:
//  1. Collect the bytes of every enabled class; none at all ⇒ ErrNoAlphabet.
//  2. Sort and deduplicate them into the sampling alphabet.
//  3. Collect the full byte set of each mandatory class in the fixed order
//     upper, lower, letter, digit, whitespace, symbol, custom.
//  4. length < number of mandatory classes ⇒ ErrTooShort.
//  5. Resolve the random source (injected, else rng.Default()).
//
// Complexity: O(A log A) for A collected bytes.
func (s *Spec) TryBuild() (*Generator, error) {
	const method = "TryBuild"

	enabled := s.classes()
	pool := alphabet.Merge(enabled...)
	if len(pool) == 0 {
		return nil, buildErrorf(method, ErrNoAlphabet, "%d enabled classes contribute no characters", len(enabled))
	}

	var mandatory []alphabet.Class
	for _, c := range enabled {
		if !s.mandatory[c.Kind()] {
			continue
		}
		if c.Empty() {
			return nil, buildErrorf(method, ErrNoAlphabet, "mandatory %s class is empty", c.Kind())
		}
		mandatory = append(mandatory, c)
	}

	if s.length < len(mandatory) {
		return nil, buildErrorf(method, ErrTooShort, "length %d < %d mandatory classes", s.length, len(mandatory))
	}

	src := s.src
	if src == nil {
		src = rng.Default()
	}

	return &Generator{
		alphabet:  pool,
		mandatory: mandatory,
		length:    s.length,
		src:       src,
	}, nil
}

// Build is TryBuild for callers that treat misconfiguration as a programming
// error: it panics with the TryBuild error instead of returning it.
func (s *Spec) Build() *Generator {
	g, err := s.TryBuild()
	if err != nil {
		panic(err)
	}
	return g
}
