package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/battleship/game"
)

// ShotReport describes one resolved shot
type ShotReport struct {
	Side   Side
	Target game.Coord
	Result game.ShotResult
	// Repeat is set when the target had already been fired upon
	Repeat bool
}

// Stats counts one side's shots
type Stats struct {
	Shots   int
	Hits    int
	Repeats int
}

// Accuracy returns hits per shot in [0, 1]
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

func (s *Stats) record(r ShotReport) {
	s.Shots++
	if r.Result == game.ShotHit {
		s.Hits++
	}
	if r.Repeat {
		s.Repeats++
	}
}

// Outcome summarizes a finished game
type Outcome struct {
	GameID   uuid.UUID
	Winner   Side
	Rounds   int
	Player   Stats
	Opponent Stats
}
