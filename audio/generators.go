package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// BlastGenerator generates an explosion: a pitched thump under decaying noise
type BlastGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	seed int64
}

// NewBlastGenerator creates a blast sound generator
func NewBlastGenerator(sr beep.SampleRate, freq float64) *BlastGenerator {
	return &BlastGenerator{
		sr:   sr,
		freq: freq,
		seed: time.Now().UnixNano(),
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Exp(-t * 18)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Pitch drops an octave over the first 100ms
		freq := g.freq * (0.5 + 0.5*math.Exp(-t*10))
		thump := math.Sin(2 * math.Pi * freq * t)

		sample := envelope * (0.2*noise + 0.25*thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}

// fadeOut scales a stream linearly from gain to zero over total samples
type fadeOut struct {
	streamer beep.Streamer
	gain     float64
	pos      int
	total    int
}

// NewFadeOut wraps s with a linear fade from gain to silence over total samples
func NewFadeOut(s beep.Streamer, total int, gain float64) beep.Streamer {
	if total < 1 {
		total = 1
	}
	return &fadeOut{streamer: s, gain: gain, total: total}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := f.gain * (1 - float64(f.pos)/float64(f.total))
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}

// NoteSequence plays each frequency for step in order, fading every note out.
// Frequencies the sample rate cannot represent are skipped
func NoteSequence(sr beep.SampleRate, freqs []float64, step time.Duration) beep.Streamer {
	n := sr.N(step)
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		notes = append(notes, NewFadeOut(beep.Take(n, tone), n, 0.25))
	}
	return beep.Seq(notes...)
}
