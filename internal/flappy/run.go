package flappy

import (
	"slices"
	"time"
)

// RunState is the complete mutable state of one playthrough.
type RunState struct {
	Score     int
	Avatar    Avatar
	Obstacles []Obstacle    // Spawn order, left to right
	Elapsed   time.Duration // Play time accumulated from frame deltas
}

// Clone returns a deep copy. Obstacles are copied by value so the clone
// never shares a backing array with r.
func (r RunState) Clone() RunState {
	c := r
	c.Obstacles = slices.Clone(r.Obstacles)
	return c
}

// Equal reports value equality of two run states.
func (r RunState) Equal(other RunState) bool {
	return r.Score == other.Score &&
		r.Avatar == other.Avatar &&
		r.Elapsed == other.Elapsed &&
		slices.Equal(r.Obstacles, other.Obstacles)
}
