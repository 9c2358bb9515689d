// SPDX-License-Identifier: MIT
// Package: randstr
//
// config.go — serializable view of a Spec.
//
// Config carries the enabled/mandatory flags, the custom set and the length.
// It never carries the random source. Tags cover yaml (gopkg.in/yaml.v3),
// json and mapstructure (viper), so the same struct feeds files, APIs and
// the command line.

package randstr

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randstr/alphabet"
)

// Config is the plain-data form of a Spec.
type Config struct {
	Upper      bool    `yaml:"upper,omitempty" json:"upper,omitempty" mapstructure:"upper"`
	Lower      bool    `yaml:"lower,omitempty" json:"lower,omitempty" mapstructure:"lower"`
	Letter     bool    `yaml:"letter,omitempty" json:"letter,omitempty" mapstructure:"letter"`
	Digit      bool    `yaml:"digit,omitempty" json:"digit,omitempty" mapstructure:"digit"`
	Symbol     bool    `yaml:"symbol,omitempty" json:"symbol,omitempty" mapstructure:"symbol"`
	Whitespace bool    `yaml:"whitespace,omitempty" json:"whitespace,omitempty" mapstructure:"whitespace"`
	Custom     *string `yaml:"custom,omitempty" json:"custom,omitempty" mapstructure:"custom"`

	MustUpper      bool `yaml:"must_upper,omitempty" json:"must_upper,omitempty" mapstructure:"must_upper"`
	MustLower      bool `yaml:"must_lower,omitempty" json:"must_lower,omitempty" mapstructure:"must_lower"`
	MustLetter     bool `yaml:"must_letter,omitempty" json:"must_letter,omitempty" mapstructure:"must_letter"`
	MustDigit      bool `yaml:"must_digit,omitempty" json:"must_digit,omitempty" mapstructure:"must_digit"`
	MustSymbol     bool `yaml:"must_symbol,omitempty" json:"must_symbol,omitempty" mapstructure:"must_symbol"`
	MustWhitespace bool `yaml:"must_whitespace,omitempty" json:"must_whitespace,omitempty" mapstructure:"must_whitespace"`
	MustCustom     bool `yaml:"must_custom,omitempty" json:"must_custom,omitempty" mapstructure:"must_custom"`

	Length int `yaml:"length" json:"length" mapstructure:"length"`
}

// flagRef points at the enabled and mandatory fields of one built-in kind.
type flagRef struct {
	kind          alphabet.Kind
	enabled, must *bool
}

// flags lists the built-in kinds of c in compile order.
func (c *Config) flags() []flagRef {
	return []flagRef{
		{alphabet.Upper, &c.Upper, &c.MustUpper},
		{alphabet.Lower, &c.Lower, &c.MustLower},
		{alphabet.Letter, &c.Letter, &c.MustLetter},
		{alphabet.Digit, &c.Digit, &c.MustDigit},
		{alphabet.Whitespace, &c.Whitespace, &c.MustWhitespace},
		{alphabet.Symbol, &c.Symbol, &c.MustSymbol},
	}
}

// Config snapshots the Spec. Mandatory classes are reported as enabled too.
func (s *Spec) Config() Config {
	var c Config
	for _, f := range c.flags() {
		*f.enabled = s.Enabled(f.kind)
		*f.must = s.Mandatory(f.kind)
	}
	if s.custom != nil {
		chars := *s.custom
		c.Custom = &chars
	}
	c.MustCustom = s.Mandatory(alphabet.Custom)
	c.Length = s.length
	return c
}

// FromConfig builds a Spec from c on top of New(opts...).
// MustCustom without Custom marks an empty custom class mandatory, which
// TryBuild rejects with ErrNoAlphabet.
func FromConfig(c Config, opts ...Option) *Spec {
	s := New(opts...)
	for _, f := range c.flags() {
		if *f.enabled {
			s.Enable(f.kind)
		}
		if *f.must {
			s.Must(f.kind)
		}
	}
	switch {
	case c.MustCustom && c.Custom != nil:
		s.MustCustom(*c.Custom)
	case c.MustCustom:
		s.MustCustom("")
	case c.Custom != nil:
		s.Custom(*c.Custom)
	}
	return s.Length(c.Length)
}

// LoadConfig decodes a YAML document into a Config. Unknown keys are
// rejected; an empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return c, nil
}

// WriteYAML encodes c as a YAML document.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	return enc.Close()
}
