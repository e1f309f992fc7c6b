package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleship/audio"
	"github.com/lixenwraith/battleship/engine"
	"github.com/lixenwraith/battleship/game"
	"github.com/lixenwraith/battleship/input"
	"github.com/lixenwraith/battleship/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBATTLESHIP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if err := loadEnvFile(envFilePath(args)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		os.Exit(2)
	}

	cfg, err := parseConfig(args, os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	log.Printf("starting: ui=%s color=%s sound=%t seed=%d", cfg.UI, cfg.Color, cfg.Sound, cfg.Seed)

	var sound engine.SoundPlayer
	if cfg.Sound {
		sm := audio.NewSoundManager(audio.LoadAudioConfig(os.Getenv))
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	fe, err := buildFrontEnd(cfg)
	if err != nil {
		return err
	}
	defer fe.close()

	outcome, err := playGame(fe, sound, cfg.Seed)
	switch {
	case errors.Is(err, input.ErrQuit):
		log.Printf("player quit")
		return nil
	case errors.Is(err, io.EOF):
		return errors.New("input closed before the game ended")
	case err != nil:
		return err
	}

	log.Printf("finished game %s: winner %s", outcome.GameID, outcome.Winner)

	// Keep the final screen up until acknowledged
	if cfg.UI == uiScreen {
		if err := fe.human.WaitAck(); err != nil && !errors.Is(err, input.ErrQuit) {
			return err
		}
	}
	return nil
}

func buildFrontEnd(cfg config) (*frontEnd, error) {
	if cfg.UI == uiScreen {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
		fe, err := newScreenFrontEnd(screen)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize screen: %w", err)
		}
		return fe, nil
	}

	mode, err := terminal.ResolveColorMode(cfg.Color, os.Stdout)
	if err != nil {
		return nil, err
	}
	return newTextFrontEnd(os.Stdin, os.Stdout, mode), nil
}

// playGame runs one session to completion; a zero seed uses the process-wide random source
func playGame(fe *frontEnd, sound engine.SoundPlayer, seed uint64) (engine.Outcome, error) {
	var rng game.Rand
	if seed != 0 {
		rng = game.NewSeededRand(seed)
	}

	session, err := engine.NewSession(engine.SessionConfig{
		Display: fe.display,
		Input:   fe.human,
		Sound:   sound,
		Rand:    rng,
	})
	if err != nil {
		return engine.Outcome{}, err
	}
	return session.Run()
}
