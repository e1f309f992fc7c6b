package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/game"
)

type echoLog struct {
	prompts []string
	rejects []string
	err     error
}

func (e *echoLog) Prompt(text string) error {
	e.prompts = append(e.prompts, text)
	return e.err
}

func (e *echoLog) Reject(text string) error {
	e.rejects = append(e.rejects, text)
	return e.err
}

func TestPrompter_RepromptsOnMalformedInput(t *testing.T) {
	echo := &echoLog{}
	p := NewPrompter(NewStreamReader(strings.NewReader("abc\n2,3\n")), echo)

	c, err := p.ReadCoord()
	if err != nil {
		t.Fatalf("ReadCoord failed: %v", err)
	}
	if c != (game.Coord{Row: 2, Col: 3}) {
		t.Errorf("Expected 2,3, got %s", c)
	}
	if len(echo.rejects) != 1 {
		t.Errorf("Expected 1 rejection, got %d", len(echo.rejects))
	}
	if len(echo.prompts) != 2 {
		t.Errorf("Expected 2 prompts, got %d", len(echo.prompts))
	}
	if p.Rejected() != 1 {
		t.Errorf("Expected rejected counter 1, got %d", p.Rejected())
	}
}

func TestPrompter_UnboundedRetries(t *testing.T) {
	bad := strings.Repeat("x\n10,10\n1;2\n\n", 50)
	echo := &echoLog{}
	p := NewPrompter(NewStreamReader(strings.NewReader(bad+" 4 , 5 \n")), echo)

	c, err := p.ReadCoord()
	if err != nil {
		t.Fatalf("ReadCoord failed: %v", err)
	}
	if c != (game.Coord{Row: 4, Col: 5}) {
		t.Errorf("Expected 4,5, got %s", c)
	}
	if len(echo.rejects) != 200 {
		t.Errorf("Expected 200 rejections, got %d", len(echo.rejects))
	}
	for _, r := range echo.rejects {
		if r != constants.MsgInvalidInput {
			t.Fatalf("Unexpected rejection text %q", r)
		}
	}
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(NewStreamReader(strings.NewReader("nope\n")), &echoLog{})

	_, err := p.ReadCoord()
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestPrompter_EchoError(t *testing.T) {
	boom := errors.New("write failed")
	p := NewPrompter(NewStreamReader(strings.NewReader("1,1\n")), &echoLog{err: boom})

	if _, err := p.ReadCoord(); !errors.Is(err, boom) {
		t.Errorf("Expected echo error, got %v", err)
	}
}

func TestPrompter_WaitAck(t *testing.T) {
	echo := &echoLog{}
	p := NewPrompter(NewStreamReader(strings.NewReader("\n3,3\n")), echo)

	if err := p.WaitAck(); err != nil {
		t.Fatalf("WaitAck failed: %v", err)
	}
	if len(echo.prompts) != 1 || echo.prompts[0] != constants.MsgContinue {
		t.Errorf("Expected continue prompt, got %v", echo.prompts)
	}

	// The acknowledgement line must not be taken as a move
	c, err := p.ReadCoord()
	if err != nil {
		t.Fatalf("ReadCoord failed: %v", err)
	}
	if c != (game.Coord{Row: 3, Col: 3}) {
		t.Errorf("Expected 3,3, got %s", c)
	}
}

func TestStreamReader_LineEndings(t *testing.T) {
	r := NewStreamReader(strings.NewReader("1,2\r\n3,4\nlast"))

	for _, want := range []string{"1,2", "3,4", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF after last line, got %v", err)
	}
}
