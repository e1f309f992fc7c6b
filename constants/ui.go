package constants

// Board titles
const (
	TitlePlayerBoard   = "Your Board:"
	TitleOpponentBoard = "Opponent's Board:"
)

// Turn messages
const (
	MsgPlayerMiss   = "You missed!"
	MsgPlayerHit    = "You hit a ship!"
	MsgOpponentMiss = "Opponent missed!"
	MsgOpponentHit  = "Opponent hit one of your ships!"
	MsgVictory      = "Congratulations! You sank all your opponent's ships!"
	MsgDefeat       = "Oh no! All of your ships have been sunk!"
	MsgContinue     = "Press Enter to continue..."
	MsgPrompt       = "Enter coordinates to fire (row, col): "
	MsgInvalidInput = "Invalid input. Please enter row and column numbers separated by a comma."
)

// Cell glyphs
const (
	GlyphWater = '□'
	GlyphShip  = '■'
	GlyphHit   = '●'
	GlyphMiss  = '·'
)

// CellWidth is the number of columns a single board cell occupies in the text layout (" x ")
const CellWidth = 3

// RowLabelWidth is the width of the row index gutter ("%2d ")
const RowLabelWidth = 3
