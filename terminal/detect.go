package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	t := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(t, "truecolor") ||
		strings.Contains(t, "24bit") ||
		strings.Contains(t, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ResolveColorMode maps a user setting to a ColorMode.
// "auto" yields plain output when out is not a terminal or NO_COLOR is set
func ResolveColorMode(setting string, out *os.File) (ColorMode, error) {
	switch strings.ToLower(setting) {
	case "none", "off", "plain":
		return ColorModeNone, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "auto", "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return ColorModeNone, nil
		}
		if out == nil || !IsTerminal(out) {
			return ColorModeNone, nil
		}
		return DetectColorMode(), nil
	default:
		return ColorModeNone, fmt.Errorf("unknown color mode %q", setting)
	}
}
