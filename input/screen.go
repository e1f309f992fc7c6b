package input

import (
	"errors"
	"io"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned when the user asks to leave the game from a screen prompt
var ErrQuit = errors.New("quit requested")

// maxLineRunes bounds a screen-edited line
const maxLineRunes = 32

// ScreenReader assembles lines from tcell key events.
// echo is called with the partial line after every edit so the caller can redraw the prompt
type ScreenReader struct {
	screen tcell.Screen
	echo   func(partial string)
}

// NewScreenReader creates a line reader over an initialized screen
func NewScreenReader(screen tcell.Screen, echo func(partial string)) *ScreenReader {
	if echo == nil {
		echo = func(string) {}
	}
	return &ScreenReader{screen: screen, echo: echo}
}

// ReadLine blocks until Enter. Escape and Ctrl-C return ErrQuit; a finalized screen returns io.EOF
func (r *ScreenReader) ReadLine() (string, error) {
	var lb lineBuffer
	r.echo("")

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			r.screen.Sync()
			r.echo(lb.String())
		case *tcell.EventKey:
			done, err := lb.handleKey(ev)
			if err != nil {
				return "", err
			}
			if done {
				return lb.String(), nil
			}
			r.echo(lb.String())
		}
	}
}

// lineBuffer is the editable line behind ScreenReader
type lineBuffer struct {
	runes []rune
}

func (lb *lineBuffer) String() string {
	return string(lb.runes)
}

// handleKey applies one key event. Returns done=true on Enter
func (lb *lineBuffer) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return true, nil
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, ErrQuit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(lb.runes); n > 0 {
			lb.runes = lb.runes[:n-1]
		}
	case tcell.KeyCtrlU:
		lb.runes = lb.runes[:0]
	case tcell.KeyRune:
		if len(lb.runes) < maxLineRunes {
			lb.runes = append(lb.runes, ev.Rune())
		}
	}
	return false, nil
}
