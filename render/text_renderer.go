package render

import (
	"fmt"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/engine"
	"github.com/lixenwraith/battleship/game"
	"github.com/lixenwraith/battleship/terminal"
)

// TextRenderer writes boards and messages as styled lines.
// It implements engine.Display and input.Echo
type TextRenderer struct {
	w *terminal.Writer
}

// NewTextRenderer creates a renderer over a styled writer
func NewTextRenderer(w *terminal.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// ShowBoards clears the screen and draws the player's board revealed and the opponent's hidden
func (r *TextRenderer) ShowBoards(player, opponent *game.Board) error {
	r.w.Clear()

	r.w.Styled(constants.TitlePlayerBoard, toRGB(RgbTitle), terminal.AttrBold)
	r.w.WriteString("\n")
	r.DrawBoard(player, false)

	r.w.Styled(constants.TitleOpponentBoard, toRGB(RgbTitle), terminal.AttrBold)
	r.w.WriteString("\n")
	r.DrawBoard(opponent, true)

	return r.w.Flush()
}

// DrawBoard writes a header of column indices and one row per grid row prefixed by its index.
// Output is buffered until the next flush
func (r *TextRenderer) DrawBoard(b *game.Board, hideShips bool) {
	size := b.Size()
	labels := toRGB(RgbLabels)

	header := make([]byte, 0, constants.RowLabelWidth+size*constants.CellWidth)
	header = append(header, "   "...)
	for c := 0; c < size; c++ {
		header = fmt.Appendf(header, " %d ", c)
	}
	r.w.Styled(string(header), labels, terminal.AttrNone)
	r.w.WriteString("\n")

	for row := 0; row < size; row++ {
		r.w.Styled(fmt.Sprintf("%2d ", row), labels, terminal.AttrNone)
		for col := 0; col < size; col++ {
			look := CellLook(b.Cell(row, col), hideShips)
			attr := terminal.AttrNone
			if look.Bold {
				attr = terminal.AttrBold
			}
			r.w.SetStyle(toRGB(look.Color), attr)
			r.w.WriteRune(' ')
			r.w.WriteRune(look.Glyph)
			r.w.WriteRune(' ')
		}
		r.w.ResetStyle()
		r.w.WriteString("\n")
	}
}

// ShowShot writes the shot result line
func (r *TextRenderer) ShowShot(report engine.ShotReport) error {
	r.writeLine(ShotLine(report))
	return r.w.Flush()
}

// ShowOutcome writes the end-of-game banner and summary
func (r *TextRenderer) ShowOutcome(outcome engine.Outcome) error {
	for _, l := range OutcomeLines(outcome) {
		r.writeLine(l)
	}
	return r.w.Flush()
}

// Prompt writes text without a line break so input follows on the same line
func (r *TextRenderer) Prompt(text string) error {
	r.w.Styled(text, toRGB(RgbPrompt), terminal.AttrBold)
	return r.w.Flush()
}

// Reject writes an error line
func (r *TextRenderer) Reject(text string) error {
	r.writeLine(Line{Text: text, Color: RgbError, Bold: true})
	return r.w.Flush()
}

func (r *TextRenderer) writeLine(l Line) {
	attr := terminal.AttrNone
	if l.Bold {
		attr = terminal.AttrBold
	}
	r.w.Styled(l.Text, toRGB(l.Color), attr)
	r.w.WriteString("\n")
}
