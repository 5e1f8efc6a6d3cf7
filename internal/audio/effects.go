// Package audio synthesises the game's sound effects and background music
// with beep. Nothing here is sampled from files; every sound is generated.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// SoundType identifies a one-shot effect.
type SoundType int

const (
	SoundFlap SoundType = iota
	SoundScore
	SoundCrash
)

// String returns a human-readable name for the sound.
func (s SoundType) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Effect timings
const (
	flapDuration  = 90 * time.Millisecond
	flapAttack    = 5 * time.Millisecond
	flapRelease   = 60 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	scoreAttack   = 3 * time.Millisecond
	scoreRelease  = 40 * time.Millisecond
	crashDuration = 350 * time.Millisecond
	crashAttack   = 2 * time.Millisecond
	crashRelease  = 300 * time.Millisecond
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves by sweep Hz per second.
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		val := waveValue(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += math.Max(freq, 0) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveValue returns the amplitude of wave at phase in [0, 1).
func waveValue(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades s in over attack and out over the last release of duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := envelopeGain(e.position, e.attackSamples, e.releaseSamples, e.totalSamples)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func envelopeGain(pos, attack, release, total int) float64 {
	vol := 1.0
	if attack > 0 && pos < attack {
		vol = float64(pos) / float64(attack)
	}
	releaseStart := total - release
	if release > 0 && pos >= releaseStart {
		vol = math.Min(vol, float64(total-pos)/float64(release))
	}
	return math.Max(vol, 0)
}

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero or
// less is mapped to silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFlapSound generates a short rising chirp
func CreateFlapSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(420, 4000, flapDuration, WaveTriangle, rate)
	return newVolume(NewEnvelope(osc, flapDuration, flapAttack, flapRelease, rate), 0.5)
}

// CreateScoreSound generates a two-note ding
func CreateScoreSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, scoreNote, WaveSquare, rate), scoreNote, scoreAttack, scoreRelease, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, 2*scoreNote, WaveSquare, rate), 2*scoreNote, scoreAttack, 3*scoreRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.25)
}

// CreateCrashSound generates a noisy thud with a falling tone underneath
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate), crashDuration, crashAttack, crashRelease, rate)
	tone := NewEnvelope(NewSweep(180, -300, crashDuration, WaveSquare, rate), crashDuration, crashAttack, crashRelease, rate)
	return beep.Mix(newVolume(noise, 0.4), newVolume(tone, 0.3))
}

// GetSoundEffect returns a fresh streamer for the given sound, or nil for
// an unknown type.
func GetSoundEffect(t SoundType, rate beep.SampleRate) beep.Streamer {
	switch t {
	case SoundFlap:
		return CreateFlapSound(rate)
	case SoundScore:
		return CreateScoreSound(rate)
	case SoundCrash:
		return CreateCrashSound(rate)
	default:
		return nil
	}
}
