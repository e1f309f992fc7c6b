package audio

import (
	"encoding/json"
	"strconv"
)

// Cue identifies one of the game's sound cues
type Cue int

const (
	CueHit Cue = iota
	CueMiss
	CueVictory
	CueDefeat
)

var cueNames = map[string]Cue{
	"hit":     CueHit,
	"miss":    CueMiss,
	"victory": CueVictory,
	"defeat":  CueDefeat,
}

// Environment variables read by LoadAudioConfig
const (
	EnvMasterVolume = "BATTLESHIP_VOLUME"
	EnvCueVolumes   = "BATTLESHIP_CUE_VOLUMES"
)

// AudioConfig holds volume levels in the 0.0-1.0 range
type AudioConfig struct {
	MasterVolume float64
	CueVolumes   map[Cue]float64
}

// DefaultAudioConfig returns half master volume with every cue at full level
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		MasterVolume: 0.5,
		CueVolumes: map[Cue]float64{
			CueHit:     1.0,
			CueMiss:    0.8,
			CueVictory: 1.0,
			CueDefeat:  1.0,
		},
	}
}

// LoadAudioConfig applies environment overrides to the defaults.
// Malformed values are ignored
func LoadAudioConfig(getenv func(string) string) *AudioConfig {
	cfg := DefaultAudioConfig()

	// Master volume is given as 0-100
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	// Per-cue levels as JSON, e.g. {"hit":0.7,"miss":0.2}
	if cueVols := getenv(EnvCueVolumes); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := cueNames[name]; ok {
					cfg.CueVolumes[cue] = clamp01(v)
				}
			}
		}
	}

	return cfg
}

// Level returns the effective gain for a cue
func (c *AudioConfig) Level(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return c.MasterVolume * v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
