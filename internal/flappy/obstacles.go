package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of segments with a passable gap between them.
type Obstacle struct {
	X         float64 // Left edge of the sprite
	GapCenter float64 // Vertical midpoint of the gap, fixed at spawn
	Scored    bool    // Set once the avatar has cleared this obstacle
}

// Shape holds the obstacle geometry shared by every obstacle in a run.
type Shape struct {
	VisualWidth   float64
	HitboxMarginX float64
	ScoreInsetX   float64
	AboveHeight   float64
	BelowHeight   float64
	GapSize       float64
}

// ShapeFromConfig extracts the obstacle geometry from a config.
func ShapeFromConfig(cfg config.FlappyObstacles) Shape {
	return Shape{
		VisualWidth:   cfg.VisualWidth,
		HitboxMarginX: cfg.HitboxMarginX,
		ScoreInsetX:   cfg.ScoreInsetX,
		AboveHeight:   cfg.AboveHeight,
		BelowHeight:   cfg.BelowHeight,
		GapSize:       cfg.GapSize,
	}
}

// GapTop returns the y-coordinate of the upper edge of the gap.
func (o Obstacle) GapTop(s Shape) float64 {
	return o.GapCenter - s.GapSize/2
}

// GapBottom returns the y-coordinate of the lower edge of the gap.
func (o Obstacle) GapBottom(s Shape) float64 {
	return o.GapCenter + s.GapSize/2
}

// TopSprite returns the drawn rectangle of the segment above the gap.
func (o Obstacle) TopSprite(s Shape) core.Rect {
	return core.NewRect(o.X, o.GapTop(s)-s.AboveHeight, s.VisualWidth, s.AboveHeight)
}

// BottomSprite returns the drawn rectangle of the segment below the gap.
func (o Obstacle) BottomSprite(s Shape) core.Rect {
	return core.NewRect(o.X, o.GapBottom(s), s.VisualWidth, s.BelowHeight)
}

// TopRect returns the collision rectangle of the segment above the gap.
func (o Obstacle) TopRect(s Shape) core.Rect {
	return o.TopSprite(s).Inset(s.HitboxMarginX)
}

// BottomRect returns the collision rectangle of the segment below the gap.
func (o Obstacle) BottomRect(s Shape) core.Rect {
	return o.BottomSprite(s).Inset(s.HitboxMarginX)
}

// MarkScored flags the obstacle as cleared once its inset trailing edge has
// moved past avatarX. It reports true only on the call that sets the flag.
func (o *Obstacle) MarkScored(avatarX, scoreInsetX, visualWidth float64) bool {
	if o.Scored {
		return false
	}
	if o.X+visualWidth-scoreInsetX < avatarX {
		o.Scored = true
		return true
	}
	return false
}

// AdvanceObstacles moves every obstacle left by speed. When the rearmost
// obstacle has moved past playfieldWidth-spacing, a single new obstacle is
// appended at the right edge with a gap center from spawn. It returns the
// updated slice and the number of obstacles spawned (0 or 1).
func AdvanceObstacles(obs []Obstacle, speed, spacing, playfieldWidth float64, spawn func() float64) ([]Obstacle, int) {
	for i := range obs {
		obs[i].X -= speed
	}

	if len(obs) == 0 || obs[len(obs)-1].X < playfieldWidth-spacing {
		obs = append(obs, Obstacle{
			X:         playfieldWidth,
			GapCenter: spawn(),
		})
		return obs, 1
	}
	return obs, 0
}

// RetireObstacles drops leading obstacles that are scored and entirely left
// of the playfield. The rearmost obstacle is always kept so the spawn
// trigger keeps working. The backing array is reused.
func RetireObstacles(obs []Obstacle, visualWidth float64) []Obstacle {
	n := 0
	for n < len(obs)-1 && obs[n].Scored && obs[n].X+visualWidth < 0 {
		n++
	}
	if n == 0 {
		return obs
	}
	kept := copy(obs, obs[n:])
	return obs[:kept]
}
