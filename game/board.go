package game

import (
	"github.com/lixenwraith/battleship/constants"
)

// Board is one side's grid plus the cells its fleet occupies.
// Ship cells are a flat union across every placed ship, in placement order
type Board struct {
	grid      [constants.BoardSize][constants.BoardSize]CellState
	shipCells []Coord
	rng       Rand
}

// NewBoard creates an empty board drawing placements from the process-wide random source
func NewBoard() *Board {
	return NewBoardWithRand(nil)
}

// NewBoardWithRand creates an empty board that draws placements from r.
// A nil r falls back to the process-wide source
func NewBoardWithRand(r Rand) *Board {
	if r == nil {
		r = globalRand{}
	}
	return &Board{
		shipCells: make([]Coord, 0, constants.FleetCells()),
		rng:       r,
	}
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return constants.BoardSize
}

// Cell returns the state at (row, col). Out-of-bounds reads report CellEmpty
func (b *Board) Cell(row, col int) CellState {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return CellEmpty
	}
	return b.grid[row][col]
}

// ShipCells returns a copy of every coordinate ever assigned a ship
func (b *Board) ShipCells() []Coord {
	out := make([]Coord, len(b.shipCells))
	copy(out, b.shipCells)
	return out
}

// Fire resolves a shot at (row, col).
// Empty becomes Miss, Ship becomes Hit, and an already resolved cell is left alone and reported as a miss
func (b *Board) Fire(row, col int) (ShotResult, error) {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return ShotMiss, errOutOfBounds(row, col)
	}

	switch b.grid[row][col] {
	case CellEmpty:
		b.grid[row][col] = CellMiss
		return ShotMiss, nil
	case CellShip:
		b.grid[row][col] = CellHit
		return ShotHit, nil
	default:
		return ShotMiss, nil
	}
}

// IsDefeated reports whether every ship cell has been hit.
// A board with no ships is vacuously defeated
func (b *Board) IsDefeated() bool {
	for _, c := range b.shipCells {
		if b.grid[c.Row][c.Col] != CellHit {
			return false
		}
	}
	return true
}

// Remaining returns the number of ship cells not yet hit
func (b *Board) Remaining() int {
	n := 0
	for _, c := range b.shipCells {
		if b.grid[c.Row][c.Col] != CellHit {
			n++
		}
	}
	return n
}
