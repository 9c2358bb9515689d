package randstr

import "sync"

// Locked serializes access to a shared Generator.
//
// Generator itself carries no lock; Locked is the opt-in for callers that
// prefer one shared instance over one Generator per goroutine.
type Locked struct {
	mu sync.Mutex
	g  *Generator
}

// NewLocked wraps g. Panics on nil.
func NewLocked(g *Generator) *Locked {
	if g == nil {
		panic("randstr: NewLocked(nil)")
	}
	return &Locked{g: g}
}

// Generate is Generator.Generate under the lock.
func (l *Locked) Generate() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.g.Generate()
}

// GenerateN returns n strings produced under a single lock acquisition.
// n <= 0 yields an empty, non-nil slice.
func (l *Locked) GenerateN(n int) []string {
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n)

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < n; i++ {
		out = append(out, l.g.Generate())
	}
	return out
}

// Len returns the length of every generated string.
func (l *Locked) Len() int { return l.g.Len() }
