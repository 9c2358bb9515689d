package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
)

// Crypto is a Source backed by crypto/rand. The zero value is ready to use
// and safe for concurrent use.
//
// Intn uses rejection sampling so every value in [0, n) is equally likely.
// Both methods panic if the operating system entropy source fails, which the
// standard library treats as unrecoverable.
type Crypto struct{}

var _ Source = Crypto{}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Crypto.Intn(%d): n must be positive", n))
	}
	return int(uniform(uint64(n)))
}

// Shuffle performs a Fisher–Yates shuffle of n elements through swap.
func (c Crypto) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic(fmt.Sprintf("rng: Crypto.Shuffle(%d): n must be non-negative", n))
	}
	for i := n - 1; i > 0; i-- {
		swap(i, c.Intn(i+1))
	}
}

// uniform returns a value in [0, bound) with no modulo bias.
//
// Let N = 2^64. If N is a multiple of bound a plain modulus is uniform.
// Otherwise samples falling in the final partial band of N mod bound values
// are rejected and redrawn; the expected number of draws is below 2.
func uniform(bound uint64) uint64 {
	if bound&(bound-1) == 0 {
		return next() & (bound - 1)
	}
	r := math.MaxUint64 % bound
	if r == bound-1 {
		return next() % bound
	}
	lim := ^(r + 1) + 1 // N - (N mod bound)
	for {
		if v := next(); v < lim {
			return v % bound
		}
	}
}

// next reads 8 bytes from crypto/rand.
func next() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("rng: crypto/rand: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}
