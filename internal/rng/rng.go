// Package rng provides the randomness used when sampling templates and
// decorating drafts.
package rng

import "math/rand/v2"

// Source is satisfied by *rand.Rand. A Source is not safe for concurrent
// use; give each request its own.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a Source that always produces the same sequence for seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a Source seeded from the runtime's global generator.
func NewRandom() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Sequence replays fixed values. Ints and Floats are consumed
// independently and wrap around; an empty list yields zeros.
type Sequence struct {
	Ints   []int
	Floats []float64

	nextInt   int
	nextFloat int
}

func (s *Sequence) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.nextInt%len(s.Ints)]
	s.nextInt++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.nextFloat%len(s.Floats)]
	s.nextFloat++
	return v
}
