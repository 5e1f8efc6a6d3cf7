package audio

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNilSoundManager(t *testing.T) {
	var sm *SoundManager

	if err := sm.Initialize(); err != nil {
		t.Errorf("Initialize() on nil = %v", err)
	}
	sm.Play(SoundFlap)
	sm.Cleanup()

	if sm.Active() {
		t.Error("nil manager should not be active")
	}
	if !sm.Muted() {
		t.Error("nil manager should report muted")
	}
	if v := sm.AdjustVolume(VolumeStep); v != 0 {
		t.Errorf("AdjustVolume() on nil = %v", v)
	}
}

func TestDisabledManagerStaysInactive(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false, Music: true, Volume: 0.5})

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if sm.Active() {
		t.Error("disabled manager should not open a device")
	}
	sm.Play(SoundCrash)
}

func TestMusicQueuedFromStart(t *testing.T) {
	tests := []struct {
		name  string
		music bool
	}{
		{"music on", true},
		{"music off", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSoundManager(config.AudioConfig{Music: tt.music, Volume: 0.5})
			if got := sm.MusicPlaying(); got != tt.music {
				t.Errorf("MusicPlaying() = %v, expected %v", got, tt.music)
			}
		})
	}

	var sm *SoundManager
	if sm.MusicPlaying() {
		t.Error("nil manager should not play music")
	}
}

func TestVolumeControl(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Volume: 0.5})

	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"up", VolumeStep, 0.6},
		{"down", -VolumeStep, 0.5},
		{"clamp high", 2, 1},
		{"clamp low", -5, 0},
		{"back up", VolumeStep, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sm.AdjustVolume(tt.delta); got != tt.want {
				t.Errorf("AdjustVolume(%v) = %v, expected %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestZeroVolumeSilencesMaster(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Volume: 0.5})

	sm.SetVolume(0)
	if !sm.master.Silent {
		t.Error("zero volume should silence the master gain")
	}
	sm.SetVolume(0.25)
	if sm.master.Silent || sm.master.Volume != -2 {
		t.Errorf("master = %+v, expected Volume -2", sm.master)
	}
}

func TestMuteToggle(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Volume: 0.8})

	if sm.Muted() {
		t.Fatal("new manager should not be muted")
	}
	if !sm.ToggleMute() || !sm.master.Silent {
		t.Error("first toggle should mute")
	}
	if sm.Volume() != 0.8 {
		t.Errorf("mute changed the volume to %v", sm.Volume())
	}
	if sm.ToggleMute() || sm.master.Silent {
		t.Error("second toggle should unmute")
	}

	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("SetMuted(true) should mute")
	}
}
