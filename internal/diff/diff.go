// Package diff provides a generic previous-value differ, used to turn
// monotonically growing counters into per-observation deltas.
package diff

// Number covers the counter types the differ works on.
type Number interface {
	~int | ~int64 | ~uint64 | ~float64
}

// Store remembers the last observed value and yields the delta between
// successive observations.
type Store[T Number] struct {
	previous T
}

// New creates a Store with the given initial value.
func New[T Number](init T) *Store[T] {
	return &Store[T]{previous: init}
}

// Update records v and returns v minus the previous observation.
func (s *Store[T]) Update(v T) T {
	d := v - s.previous
	s.previous = v
	return d
}
