package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/battleship/constants"
	"github.com/lixenwraith/battleship/game"
)

var (
	ErrGameOver          = errors.New("game is already over")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrMissingDisplay    = errors.New("session requires a display")
	ErrMissingInput      = errors.New("session requires human input")
)

// SessionConfig wires a session to its collaborators.
// Only Display and Input are required
type SessionConfig struct {
	Display  Display
	Input    HumanInput
	Opponent MoveGenerator
	Sound    SoundPlayer

	// Rand drives fleet placement and the default opponent; nil uses the process-wide source
	Rand game.Rand

	// Fleet overrides constants.FleetLengths
	Fleet []int

	// PlayerBoard and OpponentBoard replace the generated boards when set; no fleet is placed on them
	PlayerBoard   *game.Board
	OpponentBoard *game.Board
}

// Session owns both boards for the lifetime of one game and drives the turn loop
type Session struct {
	id    uuid.UUID
	phase Phase

	player   *game.Board
	opponent *game.Board

	display Display
	input   HumanInput
	moves   MoveGenerator
	sound   SoundPlayer

	winner        Side
	rounds        int
	playerStats   Stats
	opponentStats Stats
}

// NewSession builds both boards, places the fleet on each and starts on the player's turn
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Display == nil {
		return nil, ErrMissingDisplay
	}
	if cfg.Input == nil {
		return nil, ErrMissingInput
	}

	fleet := cfg.Fleet
	if fleet == nil {
		fleet = constants.FleetLengths[:]
	}

	player, err := prepareBoard(cfg.PlayerBoard, cfg.Rand, fleet)
	if err != nil {
		return nil, fmt.Errorf("player board: %w", err)
	}
	opponent, err := prepareBoard(cfg.OpponentBoard, cfg.Rand, fleet)
	if err != nil {
		return nil, fmt.Errorf("opponent board: %w", err)
	}

	moves := cfg.Opponent
	if moves == nil {
		moves = game.NewRandomOpponent(cfg.Rand)
	}
	sound := cfg.Sound
	if sound == nil {
		sound = silentSound{}
	}

	s := &Session{
		id:       uuid.New(),
		phase:    PhasePlayerTurn,
		player:   player,
		opponent: opponent,
		display:  cfg.Display,
		input:    cfg.Input,
		moves:    moves,
		sound:    sound,
	}
	log.Printf("[%s] new game, fleet %v", s.id, fleet)
	return s, nil
}

func prepareBoard(b *game.Board, r game.Rand, fleet []int) (*game.Board, error) {
	if b != nil {
		return b, nil
	}
	b = game.NewBoardWithRand(r)
	if err := b.PlaceFleet(fleet); err != nil {
		return nil, err
	}
	return b, nil
}

// ID returns the game id used in logs
func (s *Session) ID() uuid.UUID { return s.id }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// PlayerBoard returns the human player's board
func (s *Session) PlayerBoard() *game.Board { return s.player }

// OpponentBoard returns the computer opponent's board
func (s *Session) OpponentBoard() *game.Board { return s.opponent }

// Run alternates turns until one board is defeated
func (s *Session) Run() (Outcome, error) {
	for s.phase != PhaseGameOver {
		if err := s.Step(); err != nil {
			return Outcome{}, err
		}
	}
	return s.Outcome(), nil
}

// Step runs exactly one turn for the side whose phase is current
func (s *Session) Step() error {
	switch s.phase {
	case PhasePlayerTurn:
		return s.playerTurn()
	case PhaseOpponentTurn:
		return s.opponentTurn()
	default:
		return ErrGameOver
	}
}

// Outcome returns the summary so far; Winner is only meaningful once the phase is GameOver
func (s *Session) Outcome() Outcome {
	return Outcome{
		GameID:   s.id,
		Winner:   s.winner,
		Rounds:   s.rounds,
		Player:   s.playerStats,
		Opponent: s.opponentStats,
	}
}

// ===== TURNS =====
// Each turn follows render, act, report, pause, switch

func (s *Session) playerTurn() error {
	if err := s.display.ShowBoards(s.player, s.opponent); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	target, err := s.input.ReadCoord()
	if err != nil {
		return fmt.Errorf("read move: %w", err)
	}
	s.rounds++

	if err := s.resolve(SidePlayer, s.opponent, target); err != nil {
		return err
	}

	if s.opponent.IsDefeated() {
		return s.finish(SidePlayer)
	}
	return s.transition(PhaseOpponentTurn)
}

func (s *Session) opponentTurn() error {
	if err := s.display.ShowBoards(s.player, s.opponent); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	target := s.moves.NextMove()

	if err := s.resolve(SideOpponent, s.player, target); err != nil {
		return err
	}

	if s.player.IsDefeated() {
		return s.finish(SideOpponent)
	}
	return s.transition(PhasePlayerTurn)
}

// resolve fires at target, reports the result and waits for acknowledgement
func (s *Session) resolve(side Side, board *game.Board, target game.Coord) error {
	repeat := board.Cell(target.Row, target.Col).Resolved()

	result, err := board.Fire(target.Row, target.Col)
	if err != nil {
		return fmt.Errorf("%s fire: %w", side, err)
	}

	report := ShotReport{Side: side, Target: target, Result: result, Repeat: repeat}
	if side == SidePlayer {
		s.playerStats.record(report)
	} else {
		s.opponentStats.record(report)
	}
	log.Printf("[%s] %s fired at %s: %s (repeat=%t)", s.id, side, target, result, repeat)

	if result == game.ShotHit {
		s.sound.PlayHit()
	} else {
		s.sound.PlayMiss()
	}

	if err := s.display.ShowShot(report); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := s.input.WaitAck(); err != nil {
		return fmt.Errorf("acknowledge: %w", err)
	}
	return nil
}

func (s *Session) finish(winner Side) error {
	if err := s.transition(PhaseGameOver); err != nil {
		return err
	}
	s.winner = winner

	if winner == SidePlayer {
		s.sound.PlayVictory()
	} else {
		s.sound.PlayDefeat()
	}

	outcome := s.Outcome()
	log.Printf("[%s] game over after %d rounds, winner %s (player %d/%d, opponent %d/%d)",
		s.id, outcome.Rounds, winner,
		outcome.Player.Hits, outcome.Player.Shots,
		outcome.Opponent.Hits, outcome.Opponent.Shots)

	if err := s.display.ShowOutcome(outcome); err != nil {
		return fmt.Errorf("render outcome: %w", err)
	}
	return nil
}

func (s *Session) transition(to Phase) error {
	if !CanTransition(s.phase, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.phase, to)
	}
	s.phase = to
	return nil
}
