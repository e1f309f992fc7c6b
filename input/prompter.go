package input

import (
	"log"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/game"
)

// LineReader yields one line of user text per call, without the trailing newline
type LineReader interface {
	ReadLine() (string, error)
}

// Echo shows prompts and rejections to the user
type Echo interface {
	Prompt(text string) error
	Reject(text string) error
}

// Prompter asks for coordinates until a valid pair is entered
type Prompter struct {
	lines LineReader
	echo  Echo
	size  int

	rejected int
}

// NewPrompter creates a prompter validating against constants.BoardSize
func NewPrompter(lines LineReader, echo Echo) *Prompter {
	return &Prompter{
		lines: lines,
		echo:  echo,
		size:  constants.BoardSize,
	}
}

// ReadCoord prompts and re-prompts until a line parses.
// Only reader and echo failures are returned
func (p *Prompter) ReadCoord() (game.Coord, error) {
	for {
		if err := p.echo.Prompt(constants.MsgPrompt); err != nil {
			return game.Coord{}, err
		}

		line, err := p.lines.ReadLine()
		if err != nil {
			return game.Coord{}, err
		}

		c, perr := ParseCoord(line, p.size)
		if perr == nil {
			return c, nil
		}

		p.rejected++
		log.Printf("rejected input %q: %v", line, perr)
		if err := p.echo.Reject(constants.MsgInvalidInput); err != nil {
			return game.Coord{}, err
		}
	}
}

// WaitAck shows the continue prompt and discards one line
func (p *Prompter) WaitAck() error {
	if err := p.echo.Prompt(constants.MsgContinue); err != nil {
		return err
	}
	_, err := p.lines.ReadLine()
	return err
}

// Rejected returns how many lines failed to parse so far
func (p *Prompter) Rejected() int {
	return p.rejected
}
