package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/engine"
	"github.com/lixenwraith/battleship/game"
)

// Line is a single styled line of text
type Line struct {
	Text  string
	Color tcell.Color
	Bold  bool
}

// ShotLine returns the message reporting a shot
func ShotLine(r engine.ShotReport) Line {
	hit := r.Result == game.ShotHit
	switch {
	case r.Side == engine.SidePlayer && hit:
		return Line{Text: constants.MsgPlayerHit, Color: RgbHit}
	case r.Side == engine.SidePlayer:
		return Line{Text: constants.MsgPlayerMiss, Color: RgbMiss}
	case hit:
		return Line{Text: fmt.Sprintf("%s (%s)", constants.MsgOpponentHit, r.Target), Color: RgbHit}
	default:
		return Line{Text: fmt.Sprintf("%s (%s)", constants.MsgOpponentMiss, r.Target), Color: RgbMiss}
	}
}

// OutcomeLines returns the end-of-game banner followed by the summary
func OutcomeLines(o engine.Outcome) []Line {
	banner := Line{Text: constants.MsgVictory, Color: RgbVictory, Bold: true}
	if o.Winner == engine.SideOpponent {
		banner = Line{Text: constants.MsgDefeat, Color: RgbDefeat, Bold: true}
	}

	return []Line{
		banner,
		{Text: fmt.Sprintf("Rounds: %d", o.Rounds), Color: RgbSummary},
		{Text: "Your shots: " + statsText(o.Player), Color: RgbSummary},
		{Text: "Opponent shots: " + statsText(o.Opponent), Color: RgbSummary},
	}
}

func statsText(s engine.Stats) string {
	return fmt.Sprintf("%d hits / %d shots (%.0f%%), %d repeated", s.Hits, s.Shots, s.Accuracy()*100, s.Repeats)
}
