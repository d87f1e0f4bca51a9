package ember

import "math/rand/v2"

// Source supplies the randomness used by spawning code (explosion bursts,
// firework colors, screen shake jitter). Injecting a Source keeps the
// simulation deterministic under test.
type Source interface {
	// Float64 returns a uniformly random float64 in [0, 1).
	Float64() float64
	// IntN returns a uniformly random int in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// DefaultSource returns a Source backed by math/rand/v2's global generator.
func DefaultSource() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.IntN(n) }

// SeededSource returns a deterministic Source seeded from the two words.
func SeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
