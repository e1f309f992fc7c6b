package engine

import (
	"github.com/lixenwraith/battleship/game"
)

// Display renders game state for the human player
type Display interface {
	// ShowBoards draws the player's board fully revealed and the opponent's board with ships hidden
	ShowBoards(player, opponent *game.Board) error
	// ShowShot reports the result of a single shot
	ShowShot(report ShotReport) error
	// ShowOutcome reports the end of the game
	ShowOutcome(outcome Outcome) error
}

// HumanInput supplies the player's moves and acknowledgements.
// ReadCoord must only return in-bounds coordinates; malformed input is handled inside it
type HumanInput interface {
	ReadCoord() (game.Coord, error)
	WaitAck() error
}

// MoveGenerator supplies the opponent's moves
type MoveGenerator interface {
	NextMove() game.Coord
}

// SoundPlayer plays optional audio cues
type SoundPlayer interface {
	PlayHit()
	PlayMiss()
	PlayVictory()
	PlayDefeat()
}

type silentSound struct{}

func (silentSound) PlayHit()     {}
func (silentSound) PlayMiss()    {}
func (silentSound) PlayVictory() {}
func (silentSound) PlayDefeat()  {}
