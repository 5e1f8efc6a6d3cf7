package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Arpeggio over a I-V-vi-IV progression, one note per step.
var musicNotes = []float64{
	261.63, 329.63, 392.00, 329.63, // C
	196.00, 246.94, 293.66, 246.94, // G
	220.00, 261.63, 329.63, 261.63, // Am
	174.61, 220.00, 261.63, 220.00, // F
}

const musicStep = 180 * time.Millisecond

// MusicGenerator plays an endless chiptune arpeggio over a bass line.
// It never ends; pause it with a beep.Ctrl.
type MusicGenerator struct {
	sr    beep.SampleRate
	pos   int
	step  int
	lead  float64 // Oscillator phases in [0, 1)
	bass  float64
	notes []float64
}

// NewMusicGenerator creates a music generator at sample rate sr.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:    sr,
		step:  sr.N(musicStep),
		notes: musicNotes,
	}
}

// Note returns the lead frequency at sample position pos.
func (g *MusicGenerator) Note(pos int) float64 {
	return g.notes[(pos/g.step)%len(g.notes)]
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := g.Note(g.pos)
		// Bass follows the first note of each bar two octaves down.
		bar := (g.pos / g.step / 4) * 4
		bassFreq := g.notes[bar%len(g.notes)] / 4

		inStep := float64(g.pos%g.step) / float64(g.step)
		env := math.Exp(-inStep * 4)

		sample := 0.12*env*waveValue(WaveSquare, g.lead) + 0.1*waveValue(WaveTriangle, g.bass)

		samples[i][0] = sample
		samples[i][1] = sample

		g.lead += freq / float64(g.sr)
		g.lead -= math.Floor(g.lead)
		g.bass += bassFreq / float64(g.sr)
		g.bass -= math.Floor(g.bass)
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
