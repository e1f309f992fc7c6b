package constants

import "time"

// AudioSampleRate is the speaker sample rate in Hz
const AudioSampleRate = 44100

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

// Shot cue timing
const (
	HitSoundDuration  = 180 * time.Millisecond
	HitSoundFreq      = 880.0
	MissSoundDuration = 250 * time.Millisecond
	MissSoundFreq     = 220.0
)

// Game end jingles: one note per step
const (
	JingleNoteDuration = 150 * time.Millisecond
)

// VictoryNotes ascend, DefeatNotes descend (Hz)
var (
	VictoryNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}
	DefeatNotes  = [...]float64{392.00, 329.63, 261.63, 196.00}
)
