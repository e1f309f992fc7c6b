package game

import (
	"github.com/lixenwraith/battleship/constants"
)

// CanPlace reports whether a ship of length cells starting at (row, col) and running along o
// stays on the board and covers only empty cells
func (b *Board) CanPlace(row, col, length int, o Orientation) bool {
	if length < 1 || row < 0 || col < 0 {
		return false
	}

	dr, dc := o.step()
	endRow := row + dr*(length-1)
	endCol := col + dc*(length-1)
	if endRow >= constants.BoardSize || endCol >= constants.BoardSize || row >= constants.BoardSize || col >= constants.BoardSize {
		return false
	}

	for i := 0; i < length; i++ {
		if b.grid[row+dr*i][col+dc*i] != CellEmpty {
			return false
		}
	}
	return true
}

// PlaceShip places a ship of the given length at a random free position.
// Row, column and orientation are resampled together until a valid run is found; there is no scan or backtracking
func (b *Board) PlaceShip(length int) error {
	if length < 1 || length > constants.BoardSize {
		return errInvalidLength(length)
	}

	for attempt := 0; attempt < constants.MaxPlacementAttempts; attempt++ {
		row := b.rng.IntN(constants.BoardSize)
		col := b.rng.IntN(constants.BoardSize)
		o := Orientation(b.rng.IntN(2))

		if b.CanPlace(row, col, length, o) {
			b.mark(row, col, length, o)
			return nil
		}
	}
	return ErrPlacementExhausted
}

// PlaceShipAt places a ship at an exact position
func (b *Board) PlaceShipAt(row, col, length int, o Orientation) error {
	if !b.CanPlace(row, col, length, o) {
		return errInvalidPlacement(row, col, length, o)
	}
	b.mark(row, col, length, o)
	return nil
}

// PlaceFleet places each length in order with PlaceShip
func (b *Board) PlaceFleet(lengths []int) error {
	for _, l := range lengths {
		if err := b.PlaceShip(l); err != nil {
			return err
		}
	}
	return nil
}

// mark assumes CanPlace already passed
func (b *Board) mark(row, col, length int, o Orientation) {
	dr, dc := o.step()
	for i := 0; i < length; i++ {
		r, c := row+dr*i, col+dc*i
		b.grid[r][c] = CellShip
		b.shipCells = append(b.shipCells, Coord{Row: r, Col: c})
	}
}
