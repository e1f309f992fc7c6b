package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/battleship/constants"
)

func TestNewBoard_Empty(t *testing.T) {
	b := NewBoard()

	for r := 0; r < constants.BoardSize; r++ {
		for c := 0; c < constants.BoardSize; c++ {
			assert.Equal(t, CellEmpty, b.Cell(r, c), "cell %d,%d", r, c)
		}
	}
	assert.Empty(t, b.ShipCells())
	assert.Equal(t, constants.BoardSize, b.Size())
}

func TestBoard_FireEmptyTwice(t *testing.T) {
	// given
	b := NewBoard()

	// when
	first, err := b.Fire(0, 0)
	require.NoError(t, err)

	// then
	assert.Equal(t, ShotMiss, first)
	assert.Equal(t, CellMiss, b.Cell(0, 0))

	second, err := b.Fire(0, 0)
	require.NoError(t, err)
	assert.Equal(t, ShotMiss, second)
	assert.Equal(t, CellMiss, b.Cell(0, 0))
}

func TestBoard_FireShipTwice(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(4, 4, 2, Horizontal))

	first, err := b.Fire(4, 5)
	require.NoError(t, err)
	assert.Equal(t, ShotHit, first)
	assert.Equal(t, CellHit, b.Cell(4, 5))

	second, err := b.Fire(4, 5)
	require.NoError(t, err)
	assert.Equal(t, ShotMiss, second)
	assert.Equal(t, CellHit, b.Cell(4, 5), "hit cell must not revert")
}

func TestBoard_FireOutOfBounds(t *testing.T) {
	b := NewBoard()

	testCases := []struct {
		Name string
		Row  int
		Col  int
	}{
		{Name: "negative row", Row: -1, Col: 0},
		{Name: "negative col", Row: 0, Col: -1},
		{Name: "row too large", Row: constants.BoardSize, Col: 0},
		{Name: "col too large", Row: 0, Col: constants.BoardSize},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := b.Fire(tc.Row, tc.Col)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestBoard_SingleCellShipDefeat(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(3, 3, 1, Horizontal))
	assert.False(t, b.IsDefeated())

	res, err := b.Fire(3, 3)
	require.NoError(t, err)

	assert.Equal(t, ShotHit, res)
	assert.True(t, b.IsDefeated())
}

func TestBoard_NoShipsIsDefeated(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.IsDefeated(), "board with zero ships is vacuously defeated")
}

func TestBoard_DefeatRequiresEveryCell(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(0, 0, 3, Vertical))
	require.NoError(t, b.PlaceShipAt(9, 7, 3, Horizontal))

	targets := []Coord{{0, 0}, {1, 0}, {2, 0}, {9, 7}, {9, 8}}
	for _, c := range targets {
		_, err := b.Fire(c.Row, c.Col)
		require.NoError(t, err)
		assert.False(t, b.IsDefeated(), "defeated too early after %s", c)
	}
	assert.Equal(t, 1, b.Remaining())

	_, err := b.Fire(9, 9)
	require.NoError(t, err)
	assert.True(t, b.IsDefeated())
	assert.Equal(t, 0, b.Remaining())
}

func TestBoard_ShipCellsIsCopy(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShipAt(1, 1, 2, Horizontal))

	cells := b.ShipCells()
	cells[0] = Coord{Row: 9, Col: 9}

	assert.Equal(t, []Coord{{1, 1}, {1, 2}}, b.ShipCells())
}

func TestBoard_ShipCellsHoldShipOrHit(t *testing.T) {
	b := NewBoardWithRand(NewSeededRand(7))
	require.NoError(t, b.PlaceFleet(constants.FleetLengths[:]))

	opp := NewRandomOpponent(NewSeededRand(8))
	for i := 0; i < 150; i++ {
		m := opp.NextMove()
		_, err := b.Fire(m.Row, m.Col)
		require.NoError(t, err)

		for _, c := range b.ShipCells() {
			s := b.Cell(c.Row, c.Col)
			assert.True(t, s == CellShip || s == CellHit, "ship cell %s holds %s", c, s)
		}
	}
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "empty", CellEmpty.String())
	assert.Equal(t, "ship", CellShip.String())
	assert.Equal(t, "hit", CellHit.String())
	assert.Equal(t, "miss", CellMiss.String())
	assert.Equal(t, "CellState(9)", CellState(9).String())
}
