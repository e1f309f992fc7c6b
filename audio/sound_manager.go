package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/battleship/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays shot and game-end cues.
// Every Play call is a no-op until Initialize succeeds, so the game runs without audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	config      *AudioConfig
	initialized bool
}

// NewSoundManager creates a new sound manager; a nil config uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		config: cfg,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; clearing the mixer silences everything
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayHit plays a short explosion
func (sm *SoundManager) PlayHit() {
	sm.play(CueHit, beep.Take(sampleRate.N(constants.HitSoundDuration), NewBlastGenerator(sampleRate, constants.HitSoundFreq)))
}

// PlayMiss plays a falling splash
func (sm *SoundManager) PlayMiss() {
	sm.play(CueMiss, NewSplash(sampleRate))
}

// PlayVictory plays an ascending jingle
func (sm *SoundManager) PlayVictory() {
	sm.play(CueVictory, NoteSequence(sampleRate, constants.VictoryNotes[:], constants.JingleNoteDuration))
}

// PlayDefeat plays a descending jingle
func (sm *SoundManager) PlayDefeat() {
	sm.play(CueDefeat, NoteSequence(sampleRate, constants.DefeatNotes[:], constants.JingleNoteDuration))
}

func (sm *SoundManager) play(cue Cue, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.config.Level(cue)))
	speaker.Unlock()
}

// newVolume scales s by a linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewSplash returns a low sine tone fading out over the miss duration.
// Returns nil if the tone cannot be generated at this rate
func NewSplash(sr beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(sr, constants.MissSoundFreq)
	if err != nil {
		return nil
	}
	n := sr.N(constants.MissSoundDuration)
	return NewFadeOut(beep.Take(n, tone), n, 0.3)
}
