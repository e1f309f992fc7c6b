package game

import (
	"github.com/lixenwraith/battleship/constants"
)

// RandomOpponent picks uniformly random in-bounds targets.
// It keeps no memory of earlier shots, so the same cell can come up again
type RandomOpponent struct {
	rng Rand
}

// NewRandomOpponent creates an opponent drawing from r, or from the process-wide source when r is nil
func NewRandomOpponent(r Rand) *RandomOpponent {
	if r == nil {
		r = globalRand{}
	}
	return &RandomOpponent{rng: r}
}

// NextMove returns the next target coordinate
func (o *RandomOpponent) NextMove() Coord {
	return Coord{
		Row: o.rng.IntN(constants.BoardSize),
		Col: o.rng.IntN(constants.BoardSize),
	}
}
