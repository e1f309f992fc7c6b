package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/battleship/game"
)

var (
	ErrTokenCount = errors.New("expected exactly two values separated by a comma")
	ErrNotNumeric = errors.New("value is not a number")
	ErrOutOfRange = errors.New("value is outside the board")
)

// ParseCoord parses "<row>,<col>" with optional whitespace around each number.
// Both values must be decimal integers in [0, size)
func ParseCoord(line string, size int) (game.Coord, error) {
	tokens := strings.Split(strings.TrimSpace(line), ",")
	if len(tokens) != 2 {
		return game.Coord{}, fmt.Errorf("%w: got %d", ErrTokenCount, len(tokens))
	}

	var vals [2]int
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return game.Coord{}, fmt.Errorf("%w: %q", ErrNotNumeric, tok)
		}
		if n < 0 || n >= size {
			return game.Coord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, n, size)
		}
		vals[i] = n
	}

	return game.Coord{Row: vals[0], Col: vals[1]}, nil
}
