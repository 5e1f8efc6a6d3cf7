package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would make the simulation meaningless.
// Playfield-dependent checks (gap bounds) happen when the world size is known.
func Validate(cfg FlappyConfig) error {
	p := cfg.Physics
	if p.Gravity <= 0 {
		return invalid("physics.gravity must be positive, got %v", p.Gravity)
	}
	if p.ImpulseVelocity >= 0 {
		return invalid("physics.impulse_velocity must be negative, got %v", p.ImpulseVelocity)
	}
	if p.TerminalFallSpeed <= 0 {
		return invalid("physics.terminal_fall_speed must be positive, got %v", p.TerminalFallSpeed)
	}
	if p.ScrollSpeed <= 0 {
		return invalid("physics.scroll_speed must be positive, got %v", p.ScrollSpeed)
	}

	o := cfg.Obstacles
	if o.VisualWidth <= 0 || o.AboveHeight <= 0 || o.BelowHeight <= 0 || o.GapSize <= 0 {
		return invalid("obstacles: visual_width, above_height, below_height and gap_size must be positive")
	}
	if o.HitboxMarginX < 0 || 2*o.HitboxMarginX >= o.VisualWidth {
		return invalid("obstacles.hitbox_margin_x must be in [0, visual_width/2), got %v", o.HitboxMarginX)
	}
	if o.ScoreInsetX < 0 || o.ScoreInsetX >= o.VisualWidth {
		return invalid("obstacles.score_inset_x must be in [0, visual_width), got %v", o.ScoreInsetX)
	}
	if o.Spacing <= p.ScrollSpeed {
		return invalid("obstacles.spacing must exceed physics.scroll_speed, got %v", o.Spacing)
	}
	if o.InitialOffset < 0 {
		return invalid("obstacles.initial_offset must not be negative, got %v", o.InitialOffset)
	}

	a := cfg.Avatar
	if a.Width <= 0 || a.Height <= 0 {
		return invalid("avatar: width and height must be positive")
	}
	h := a.Hitbox
	if h.Width <= 0 || h.Height <= 0 || h.OffsetX < 0 || h.OffsetY < 0 ||
		h.OffsetX+h.Width > a.Width || h.OffsetY+h.Height > a.Height {
		return invalid("avatar.hitbox must lie inside the %vx%v sprite", a.Width, a.Height)
	}

	if cfg.Display.CellWidth <= 0 || cfg.Display.CellHeight <= 0 {
		return invalid("display: cell_width and cell_height must be positive")
	}
	if cfg.Display.Stars < 0 {
		return invalid("display.stars must not be negative, got %d", cfg.Display.Stars)
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return invalid("audio.volume must be in [0, 1], got %v", cfg.Audio.Volume)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
