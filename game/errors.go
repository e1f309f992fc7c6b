package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds        = errors.New("coordinate out of board bounds")
	ErrInvalidLength      = errors.New("ship length does not fit the board")
	ErrInvalidPlacement   = errors.New("ship cannot be placed there")
	ErrPlacementExhausted = errors.New("no free placement found")
)

func errOutOfBounds(row, col int) error {
	return fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, row, col)
}

func errInvalidLength(length int) error {
	return fmt.Errorf("%w: length %d", ErrInvalidLength, length)
}

func errInvalidPlacement(row, col, length int, o Orientation) error {
	return fmt.Errorf("%w: %d cells %s from %d,%d", ErrInvalidPlacement, length, o, row, col)
}
