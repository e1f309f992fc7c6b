package main

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleship/engine"
	"github.com/lixenwraith/battleship/input"
	"github.com/lixenwraith/battleship/render"
	"github.com/lixenwraith/battleship/terminal"
)

// frontEnd bundles the display and human input for one UI mode
type frontEnd struct {
	display engine.Display
	human   *input.Prompter
	close   func()
}

// newTextFrontEnd reads lines from in and writes styled text to out
func newTextFrontEnd(in io.Reader, out io.Writer, mode terminal.ColorMode) *frontEnd {
	r := render.NewTextRenderer(terminal.NewWriter(out, mode))
	return &frontEnd{
		display: r,
		human:   input.NewPrompter(input.NewStreamReader(in), r),
		close:   func() {},
	}
}

// newScreenFrontEnd takes over the terminal with a tcell screen
func newScreenFrontEnd(screen tcell.Screen) (*frontEnd, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	r := render.NewScreenRenderer(screen)
	return &frontEnd{
		display: r,
		human:   input.NewPrompter(input.NewScreenReader(screen, r.EchoInput), r),
		close:   screen.Fini,
	}, nil
}
