package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/battleship/constants"
)

// scriptedRand replays fixed values, then repeats the last one
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) IntN(n int) int {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i] % n
}

func TestBoard_CanPlace(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(5, 5, 3, Horizontal))

	testCases := []struct {
		Name        string
		Row, Col    int
		Length      int
		Orientation Orientation
		Expected    bool
	}{
		{Name: "fits horizontally at origin", Row: 0, Col: 0, Length: 5, Orientation: Horizontal, Expected: true},
		{Name: "fits vertically at origin", Row: 0, Col: 0, Length: 5, Orientation: Vertical, Expected: true},
		{Name: "touches right edge", Row: 0, Col: 5, Length: 5, Orientation: Horizontal, Expected: true},
		{Name: "past right edge", Row: 0, Col: 6, Length: 5, Orientation: Horizontal, Expected: false},
		{Name: "touches bottom edge", Row: 5, Col: 0, Length: 5, Orientation: Vertical, Expected: true},
		{Name: "past bottom edge", Row: 6, Col: 0, Length: 5, Orientation: Vertical, Expected: false},
		{Name: "overlaps existing ship", Row: 3, Col: 6, Length: 3, Orientation: Vertical, Expected: false},
		{Name: "ends just before ship", Row: 5, Col: 2, Length: 3, Orientation: Horizontal, Expected: true},
		{Name: "ends on ship", Row: 5, Col: 3, Length: 3, Orientation: Horizontal, Expected: false},
		{Name: "zero length", Row: 0, Col: 0, Length: 0, Orientation: Horizontal, Expected: false},
		{Name: "negative row", Row: -1, Col: 0, Length: 1, Orientation: Horizontal, Expected: false},
		{Name: "start off board", Row: 10, Col: 0, Length: 1, Orientation: Horizontal, Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, b.CanPlace(tc.Row, tc.Col, tc.Length, tc.Orientation))
		})
	}
}

func TestBoard_CanPlaceRejectsResolvedCells(t *testing.T) {
	b := NewBoard()
	_, err := b.Fire(2, 2)
	require.NoError(t, err)

	assert.False(t, b.CanPlace(2, 0, 3, Horizontal), "miss cell is not empty")
}

func TestBoard_PlaceShipLengthTwo(t *testing.T) {
	b := NewBoardWithRand(NewSeededRand(42))
	require.NoError(t, b.PlaceShip(2))

	cells := b.ShipCells()
	require.Len(t, cells, 2)

	a, c := cells[0], cells[1]
	sameRow := a.Row == c.Row && abs(a.Col-c.Col) == 1
	sameCol := a.Col == c.Col && abs(a.Row-c.Row) == 1
	assert.True(t, sameRow || sameCol, "cells %s and %s are not adjacent", a, c)

	for _, cell := range cells {
		assert.Equal(t, CellShip, b.Cell(cell.Row, cell.Col))
	}
}

func TestBoard_PlaceShipResamples(t *testing.T) {
	// given: first sample (0,8,horizontal) overflows, second (0,8,vertical) collides, third (2,2,horizontal) fits
	b := NewBoardWithRand(&scriptedRand{values: []int{0, 8, 0, 0, 8, 1, 2, 2, 0}})
	require.NoError(t, b.PlaceShipAt(0, 8, 1, Horizontal))

	// when
	require.NoError(t, b.PlaceShip(3))

	// then
	assert.Equal(t, []Coord{{0, 8}, {2, 2}, {2, 3}, {2, 4}}, b.ShipCells())
}

func TestBoard_PlaceShipInvalidLength(t *testing.T) {
	b := NewBoard()

	for _, l := range []int{0, -1, constants.BoardSize + 1} {
		err := b.PlaceShip(l)
		assert.ErrorIs(t, err, ErrInvalidLength, "length %d", l)
	}
	assert.Empty(t, b.ShipCells())
}

func TestBoard_PlaceShipExhausted(t *testing.T) {
	// Every sample lands on (0,0) horizontal, which is occupied
	b := NewBoardWithRand(&scriptedRand{values: []int{0}})
	require.NoError(t, b.PlaceShipAt(0, 0, 1, Horizontal))

	err := b.PlaceShip(2)
	assert.ErrorIs(t, err, ErrPlacementExhausted)
	assert.Len(t, b.ShipCells(), 1)
}

func TestBoard_PlaceShipAtRejects(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(0, 0, 4, Vertical))

	err := b.PlaceShipAt(2, 0, 2, Horizontal)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
	assert.Len(t, b.ShipCells(), 4)
}

func TestBoard_PlaceShipInBoundsAndMarked(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		for length := 1; length <= constants.BoardSize; length++ {
			b := NewBoardWithRand(NewSeededRand(seed))
			require.NoError(t, b.PlaceShip(length))

			cells := b.ShipCells()
			require.Len(t, cells, length)
			for _, c := range cells {
				assert.True(t, c.InBounds(), "seed %d length %d: %s out of bounds", seed, length, c)
				assert.Equal(t, CellShip, b.Cell(c.Row, c.Col))
			}
		}
	}
}

func TestBoard_PlaceFleetNoOverlap(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		b := NewBoardWithRand(NewSeededRand(seed))
		require.NoError(t, b.PlaceFleet(constants.FleetLengths[:]))

		cells := b.ShipCells()
		require.Len(t, cells, constants.FleetCells())

		seen := make(map[Coord]bool, len(cells))
		for _, c := range cells {
			assert.False(t, seen[c], "seed %d: duplicate ship cell %s", seed, c)
			seen[c] = true
		}
	}
}

func TestBoard_PlaceFleetStopsOnError(t *testing.T) {
	b := NewBoardWithRand(NewSeededRand(1))

	err := b.PlaceFleet([]int{2, 0, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Len(t, b.ShipCells(), 2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
