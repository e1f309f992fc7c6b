package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables providing flag defaults
const (
	envUI    = "BATTLESHIP_UI"
	envColor = "BATTLESHIP_COLOR"
	envSound = "BATTLESHIP_SOUND"
	envDebug = "BATTLESHIP_DEBUG"
	envSeed  = "BATTLESHIP_SEED"
)

// UI front ends
const (
	uiText   = "text"
	uiScreen = "screen"
)

type config struct {
	UI    string
	Color string
	Sound bool
	Debug bool
	Seed  uint64
}

// loadEnvFile loads KEY=VALUE pairs without overriding variables already set.
// A missing file is not an error
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// parseConfig resolves flags over environment defaults
func parseConfig(args []string, getenv func(string) string, output io.Writer) (config, error) {
	def := config{
		UI:    envString(getenv, envUI, uiText),
		Color: envString(getenv, envColor, "auto"),
		Sound: envBool(getenv, envSound),
		Debug: envBool(getenv, envDebug),
	}
	seedDefault, err := envUint(getenv, envSeed)
	if err != nil {
		return config{}, err
	}

	fset := flag.NewFlagSet("battleship", flag.ContinueOnError)
	fset.SetOutput(output)

	cfg := config{}
	fset.StringVar(&cfg.UI, "ui", def.UI, "Front end: text, screen")
	fset.StringVar(&cfg.Color, "color", def.Color, "Color mode: auto, truecolor, 256, none")
	fset.BoolVar(&cfg.Sound, "sound", def.Sound, "Play sound cues")
	fset.BoolVar(&cfg.Debug, "debug", def.Debug, "Write debug log to logs/")
	fset.Uint64Var(&cfg.Seed, "seed", seedDefault, "Random seed (0 picks one)")
	fset.String("env", ".env", "Environment file with defaults")

	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	if fset.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}

	cfg.UI = strings.ToLower(cfg.UI)
	if cfg.UI != uiText && cfg.UI != uiScreen {
		return config{}, fmt.Errorf("unknown ui %q", cfg.UI)
	}
	return cfg, nil
}

// envFilePath finds -env in args before the full parse so the file can seed defaults
func envFilePath(args []string) string {
	path := ".env"
	for i := 0; i < len(args); i++ {
		a := strings.TrimLeft(args[i], "-")
		if len(a) == len(args[i]) {
			continue
		}
		switch {
		case a == "env" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(a, "env="):
			path = strings.TrimPrefix(a, "env=")
		}
	}
	return path
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(getenv func(string) string, key string) bool {
	b, err := strconv.ParseBool(getenv(key))
	return err == nil && b
}

func envUint(getenv func(string) string, key string) (uint64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
