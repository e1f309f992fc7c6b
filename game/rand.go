package game

import (
	"math/rand/v2"
)

// Rand is the random source used for placement and opponent moves
type Rand interface {
	// IntN returns a uniform int in [0, n)
	IntN(n int) int
}

// NewSeededRand returns a deterministic source for reproducible games
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
