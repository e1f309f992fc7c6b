package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/engine"
	"github.com/lixenwraith/battleship/game"
)

// Screen layout
const (
	boardGap     = 4
	boardWidth   = constants.RowLabelWidth + constants.BoardSize*constants.CellWidth
	boardHeight  = constants.BoardSize + 2 // title + header + rows
	statusRow    = boardHeight + 1
	statusLines  = 4
	promptRow    = statusRow + statusLines + 1
	opponentLeft = boardWidth + boardGap
)

// ScreenRenderer draws the game on a full-screen tcell surface.
// It implements engine.Display and input.Echo; EchoInput is the ScreenReader callback
type ScreenRenderer struct {
	screen tcell.Screen

	player   *game.Board
	opponent *game.Board

	status []Line
	prompt string
	typed  string
}

// NewScreenRenderer creates a renderer over an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// ShowBoards draws both boards side by side and clears the status area
func (r *ScreenRenderer) ShowBoards(player, opponent *game.Board) error {
	r.player, r.opponent = player, opponent
	r.status = nil
	r.redraw()
	return nil
}

// ShowShot replaces the status area with the shot result
func (r *ScreenRenderer) ShowShot(report engine.ShotReport) error {
	r.status = []Line{ShotLine(report)}
	r.redraw()
	return nil
}

// ShowOutcome redraws the final boards with the summary below
func (r *ScreenRenderer) ShowOutcome(outcome engine.Outcome) error {
	r.status = OutcomeLines(outcome)
	r.prompt, r.typed = "", ""
	r.redraw()
	return nil
}

// Prompt sets the prompt line and clears typed text
func (r *ScreenRenderer) Prompt(text string) error {
	r.prompt, r.typed = text, ""
	r.redraw()
	return nil
}

// Reject shows an error in the status area
func (r *ScreenRenderer) Reject(text string) error {
	r.status = []Line{{Text: text, Color: RgbError, Bold: true}}
	r.redraw()
	return nil
}

// EchoInput redraws the prompt with the partially typed line
func (r *ScreenRenderer) EchoInput(partial string) {
	r.typed = partial
	r.redraw()
}

func (r *ScreenRenderer) redraw() {
	r.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(RgbTitle).Bold(true)
	if r.player != nil {
		r.drawText(0, 0, constants.TitlePlayerBoard, titleStyle)
		r.drawBoard(0, 1, r.player, false)
	}
	if r.opponent != nil {
		r.drawText(opponentLeft, 0, constants.TitleOpponentBoard, titleStyle)
		r.drawBoard(opponentLeft, 1, r.opponent, true)
	}

	for i, l := range r.status {
		if i >= statusLines {
			break
		}
		st := tcell.StyleDefault.Foreground(l.Color).Bold(l.Bold)
		r.drawText(0, statusRow+i, l.Text, st)
	}

	if r.prompt != "" {
		promptStyle := tcell.StyleDefault.Foreground(RgbPrompt).Bold(true)
		n := r.drawText(0, promptRow, r.prompt, promptStyle)
		m := r.drawText(n, promptRow, r.typed, tcell.StyleDefault)
		r.screen.ShowCursor(n+m, promptRow)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
}

// drawBoard draws the header at (x, y) and the rows beneath it
func (r *ScreenRenderer) drawBoard(x, y int, b *game.Board, hideShips bool) {
	labels := tcell.StyleDefault.Foreground(RgbLabels)
	size := b.Size()

	for c := 0; c < size; c++ {
		r.drawText(x+constants.RowLabelWidth+c*constants.CellWidth, y, fmt.Sprintf(" %d ", c), labels)
	}

	for row := 0; row < size; row++ {
		ry := y + 1 + row
		r.drawText(x, ry, fmt.Sprintf("%2d ", row), labels)
		for col := 0; col < size; col++ {
			look := CellLook(b.Cell(row, col), hideShips)
			cx := x + constants.RowLabelWidth + col*constants.CellWidth + 1
			r.screen.SetContent(cx, ry, look.Glyph, nil, look.Style())
		}
	}
}

// drawText writes s starting at (x, y) and returns the number of cells used
func (r *ScreenRenderer) drawText(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		r.screen.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}
