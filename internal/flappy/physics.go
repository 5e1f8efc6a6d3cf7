package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Hitbox is an inset rectangle relative to the avatar sprite's top-left corner.
type Hitbox struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// Avatar is the player-controlled falling entity.
type Avatar struct {
	X, Y     float64 // Top-left corner of the sprite
	Velocity float64 // Vertical velocity, positive = down
	Width    float64
	Height   float64
	Hitbox   Hitbox
}

// NewAvatar creates a resting avatar at (x, y) shaped by cfg.
func NewAvatar(cfg config.FlappyAvatar, x, y float64) Avatar {
	return Avatar{
		X:      x,
		Y:      y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Hitbox: Hitbox{
			OffsetX: cfg.Hitbox.OffsetX,
			OffsetY: cfg.Hitbox.OffsetY,
			Width:   cfg.Hitbox.Width,
			Height:  cfg.Hitbox.Height,
		},
	}
}

// Bounds returns the full sprite rectangle.
func (a Avatar) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// HitboxRect returns the collision rectangle in world coordinates.
func (a Avatar) HitboxRect() core.Rect {
	return core.NewRect(a.X+a.Hitbox.OffsetX, a.Y+a.Hitbox.OffsetY, a.Hitbox.Width, a.Hitbox.Height)
}

// Integrate advances the avatar by one tick: gravity is added to the
// velocity, the velocity is clamped to terminalFallSpeed and then applied
// to the vertical position.
func Integrate(a *Avatar, gravity, terminalFallSpeed float64) {
	a.Velocity += gravity
	if a.Velocity > terminalFallSpeed {
		a.Velocity = terminalFallSpeed
	}
	a.Y += a.Velocity
}

// ApplyImpulse replaces the current velocity with impulseVelocity.
// Repeated calls within a tick are equivalent to a single call.
func ApplyImpulse(a *Avatar, impulseVelocity float64) {
	a.Velocity = impulseVelocity
}
