package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.1

// SoundManager manages all game audio. A nil *SoundManager is valid and
// silent, as is one whose Initialize failed or was disabled by config.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl // Nil when music is disabled
	volume      float64
	muted       bool
	enabled     bool
	initialized bool
}

// NewSoundManager creates a sound manager from the audio config section.
// The music loop is queued on the mixer right away and plays in every mode
// once Initialize opens the device.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	sm := &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  clampVolume(cfg.Volume),
		enabled: cfg.Enabled,
	}
	if cfg.Music {
		sm.music = &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate)}
		sm.mixer.Add(sm.music)
	}
	sm.master = newVolume(sm.mixer, sm.volume)
	return sm
}

// Initialize opens the audio device and starts the mixer. It is a no-op if
// audio is disabled.
func (sm *SoundManager) Initialize() error {
	if sm == nil {
		return nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the device; an empty mixer is silent.
	sm.music = nil
	sm.initialized = false
}

// Play starts a one-shot effect.
func (sm *SoundManager) Play(t SoundType) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(t, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// MusicPlaying reports whether the music loop is queued and unpaused.
func (sm *SoundManager) MusicPlaying() bool {
	if sm == nil {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// Volume returns the master volume in [0, 1].
func (sm *SoundManager) Volume() float64 {
	if sm == nil {
		return 0
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume sets the master volume, clamped to [0, 1], and returns it.
func (sm *SoundManager) SetVolume(v float64) float64 {
	if sm == nil {
		return 0
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = clampVolume(v)
	sm.applyMaster()
	return sm.volume
}

// AdjustVolume changes the master volume by delta and returns the result.
func (sm *SoundManager) AdjustVolume(delta float64) float64 {
	return sm.SetVolume(sm.Volume() + delta)
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	if sm == nil {
		return true
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMuted mutes or unmutes output without touching the volume.
func (sm *SoundManager) SetMuted(muted bool) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	sm.applyMaster()
}

// ToggleMute flips the mute state and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	if sm == nil {
		return true
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.applyMaster()
	return sm.muted
}

// Active reports whether a device is open.
func (sm *SoundManager) Active() bool {
	if sm == nil {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// applyMaster pushes volume and mute into the master gain. Callers hold sm.mu.
func (sm *SoundManager) applyMaster() {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = sm.muted || sm.volume <= 0
	if sm.volume > 0 {
		sm.master.Volume = math.Log2(sm.volume)
	}
}

func clampVolume(v float64) float64 {
	return math.Round(math.Min(math.Max(v, 0), 1)*100) / 100
}
