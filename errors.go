// SPDX-License-Identifier: MIT
// Package: randstr
//
// errors.go — sentinel errors for compiling a Spec into a Generator.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site (see buildErrorf).
//   • Both errors surface from TryBuild only. Generate never fails.
//   • Build converts them into a panic carrying the same wrapped error.

package randstr

import (
	"errors"
	"fmt"
)

// ErrNoAlphabet indicates that the enabled classes contribute no bytes at all,
// so there is nothing to sample from. It is also returned when the custom
// class is mandatory but empty, since no representative could be drawn.
// Usage: if errors.Is(err, ErrNoAlphabet) { /* enable at least one class */ }.
var ErrNoAlphabet = errors.New("randstr: no alphabet specified")

// ErrTooShort indicates that the requested length cannot hold one
// representative of every mandatory class. A negative length always fails
// with this error.
// Usage: if errors.Is(err, ErrTooShort) { /* raise Length or drop a Must* */ }.
var ErrTooShort = errors.New("randstr: length is too short to contain all mandatory classes")

// buildErrorf prefixes a sentinel with method context and a formatted detail:
// "<method>: <detail>: <sentinel>".
func buildErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
