package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fixedSource always returns the same value from Float64.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newTestSession(t *testing.T, width, height float64) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultFlappyConfig(), width, height, fixedSource(0.5))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func newPlayingSession(t *testing.T, width, height float64) *Session {
	t.Helper()
	s := newTestSession(t, width, height)
	if !s.Apply(SelectSkin(0)) {
		t.Fatal("SelectSkin(0) should start a run")
	}
	return s
}
