package input

import (
	"errors"
	"testing"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/game"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    game.Coord
		wantErr error
	}{
		{name: "plain", line: "2,3", want: game.Coord{Row: 2, Col: 3}},
		{name: "spaces around numbers", line: "  7 ,  0 ", want: game.Coord{Row: 7, Col: 0}},
		{name: "trailing newline", line: "9,9\n", want: game.Coord{Row: 9, Col: 9}},
		{name: "tabs", line: "\t1,\t4", want: game.Coord{Row: 1, Col: 4}},
		{name: "origin", line: "0,0", want: game.Coord{Row: 0, Col: 0}},
		{name: "letters", line: "abc", wantErr: ErrTokenCount},
		{name: "empty", line: "", wantErr: ErrTokenCount},
		{name: "three values", line: "1,2,3", wantErr: ErrTokenCount},
		{name: "space separated", line: "1 2", wantErr: ErrTokenCount},
		{name: "non numeric row", line: "a,2", wantErr: ErrNotNumeric},
		{name: "non numeric col", line: "2,b", wantErr: ErrNotNumeric},
		{name: "missing col", line: "2,", wantErr: ErrNotNumeric},
		{name: "decimal", line: "1.5,2", wantErr: ErrNotNumeric},
		{name: "inner space", line: "1 0,2", wantErr: ErrNotNumeric},
		{name: "row too large", line: "10,0", wantErr: ErrOutOfRange},
		{name: "col too large", line: "0,10", wantErr: ErrOutOfRange},
		{name: "negative", line: "-1,0", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoord(tt.line, constants.BoardSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCoord(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoord(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoord(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
