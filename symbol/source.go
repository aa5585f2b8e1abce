package symbol

import "math/rand/v2"

// ShuffleSource produces random symbol strings from its own PCG state.
// It satisfies the engine's Source contract. A ShuffleSource is not safe
// for concurrent use; give every worker its own.
type ShuffleSource struct {
	n   int
	rng *rand.Rand
}

// NewShuffleSource creates a source generating strings of shape n, seeded
// with the given PCG seed pair.
func NewShuffleSource(n int, seed1, seed2 uint64) *ShuffleSource {
	return &ShuffleSource{
		n:   n,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Next returns the next random symbol string.
func (s *ShuffleSource) Next() (Symbols, error) {
	return Generate(s.n, s.rng), nil
}
