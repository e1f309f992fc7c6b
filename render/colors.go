package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/game"
	"github.com/lixenwraith/battleship/terminal"
)

// RGB color definitions shared by the text and screen renderers
var (
	RgbWater  = tcell.NewRGBColor(90, 110, 140)  // Slate blue
	RgbShip   = tcell.NewRGBColor(210, 210, 210) // Light gray
	RgbHit    = tcell.NewRGBColor(255, 60, 60)   // Red
	RgbMiss   = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbLabels = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbTitle   = tcell.NewRGBColor(255, 255, 255) // White
	RgbPrompt  = tcell.NewRGBColor(255, 255, 255) // White
	RgbError   = tcell.NewRGBColor(255, 0, 0)     // Error red
	RgbVictory = tcell.NewRGBColor(80, 220, 80)   // Green
	RgbDefeat  = tcell.NewRGBColor(255, 60, 60)   // Red
	RgbSummary = tcell.NewRGBColor(180, 180, 180) // Gray
)

// Look is the glyph and color used to draw something
type Look struct {
	Glyph rune
	Color tcell.Color
	Bold  bool
}

// Style converts the look to a tcell style
func (l Look) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(l.Color)
	if l.Bold {
		st = st.Bold(true)
	}
	return st
}

// CellLook returns how a cell is drawn. With hideShips set, ship cells look like water
func CellLook(s game.CellState, hideShips bool) Look {
	switch s {
	case game.CellShip:
		if hideShips {
			return Look{Glyph: constants.GlyphWater, Color: RgbWater}
		}
		return Look{Glyph: constants.GlyphShip, Color: RgbShip}
	case game.CellHit:
		return Look{Glyph: constants.GlyphHit, Color: RgbHit, Bold: true}
	case game.CellMiss:
		return Look{Glyph: constants.GlyphMiss, Color: RgbMiss}
	default:
		return Look{Glyph: constants.GlyphWater, Color: RgbWater}
	}
}

// toRGB converts a tcell color to the terminal package representation
func toRGB(c tcell.Color) terminal.RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.RGB{R: 255, G: 255, B: 255}
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
