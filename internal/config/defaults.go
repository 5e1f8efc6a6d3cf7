package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:           0.2,
			ImpulseVelocity:   -7,
			TerminalFallSpeed: 8,
			ScrollSpeed:       3,
		},
		Obstacles: FlappyObstacles{
			VisualWidth:   120,
			HitboxMarginX: 20,
			ScoreInsetX:   20,
			AboveHeight:   120,
			BelowHeight:   120,
			GapSize:       160,
			Spacing:       440,
			InitialOffset: 1000,
		},
		Avatar: FlappyAvatar{
			Width:  70,
			Height: 40,
			Hitbox: FlappyHitbox{
				OffsetX: 10,
				OffsetY: 5,
				Width:   51,
				Height:  31,
			},
		},
		Display: FlappyDisplay{
			CellWidth:  10,
			CellHeight: 20,
			Stars:      250,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
