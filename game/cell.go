package game

import (
	"fmt"

	"github.com/lixenwraith/battleship/constants"
)

// CellState is the status of a single board square
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Resolved reports whether the cell has already been fired upon
func (s CellState) Resolved() bool {
	return s == CellHit || s == CellMiss
}

// Orientation is the placement direction of a ship
type Orientation uint8

const (
	// Horizontal keeps the row fixed and advances the column
	Horizontal Orientation = iota
	// Vertical keeps the column fixed and advances the row
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// step returns the row/col delta for one cell along the orientation
func (o Orientation) step() (dr, dc int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Coord addresses a board square
type Coord struct {
	Row int
	Col int
}

// InBounds reports whether the coordinate lies on a BoardSize x BoardSize board
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < constants.BoardSize && c.Col >= 0 && c.Col < constants.BoardSize
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ShotResult is the outcome class of a fire operation
type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
)

func (r ShotResult) String() string {
	if r == ShotHit {
		return "hit"
	}
	return "miss"
}
