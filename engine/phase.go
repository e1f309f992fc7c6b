package engine

import "fmt"

// Phase is the turn controller state
type Phase uint8

const (
	PhasePlayerTurn Phase = iota
	PhaseOpponentTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseOpponentTurn:
		return "opponent-turn"
	case PhaseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Side identifies who fired or who won
type Side uint8

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideOpponent {
		return "opponent"
	}
	return "player"
}

// validTransitions lists every allowed phase change; GameOver is terminal
var validTransitions = map[Phase][]Phase{
	PhasePlayerTurn:   {PhaseOpponentTurn, PhaseGameOver},
	PhaseOpponentTurn: {PhasePlayerTurn, PhaseGameOver},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
