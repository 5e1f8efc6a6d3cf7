package flappy

import (
	"slices"
	"time"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Mode       Mode
	Score      int
	Avatar     Avatar
	Obstacles  []Obstacle
	Stars      []Star
	Skin       Skin
	HasSkin    bool
	Paused     bool // Menu with a saved run to resume
	SavedScore int  // Score of the saved run, 0 if none
	Width      float64
	Height     float64
	Elapsed    time.Duration
}

// Snapshot returns a copy of the current state. It has no side effects and
// shares no memory with the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      s.mode,
		Score:     s.run.Score,
		Avatar:    s.run.Avatar,
		Obstacles: slices.Clone(s.run.Obstacles),
		Stars:     slices.Clone(s.stars),
		Width:     s.width,
		Height:    s.height,
		Elapsed:   s.run.Elapsed,
	}
	if skin, ok := SkinAt(s.skin); ok {
		snap.Skin = skin
		snap.HasSkin = true
	}
	if s.saved != nil {
		snap.SavedScore = s.saved.Score
		snap.Paused = s.mode == ModeMenu && snap.HasSkin
	}
	return snap
}
