// Package config provides YAML-based configuration loading for the game.
// All distances are in world units; the terminal renderer maps them onto
// character cells using the display section.
package config

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Avatar    FlappyAvatar    `yaml:"avatar"`
	Display   FlappyDisplay   `yaml:"display"`
	Audio     AudioConfig     `yaml:"audio"`
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity           float64 `yaml:"gravity"`             // Added to velocity every tick
	ImpulseVelocity   float64 `yaml:"impulse_velocity"`    // Velocity set on flap (negative = up)
	TerminalFallSpeed float64 `yaml:"terminal_fall_speed"` // Velocity clamp
	ScrollSpeed       float64 `yaml:"scroll_speed"`        // Obstacle movement per tick
}

// FlappyObstacles defines obstacle geometry and spawning.
type FlappyObstacles struct {
	VisualWidth   float64 `yaml:"visual_width"`
	HitboxMarginX float64 `yaml:"hitbox_margin_x"` // Horizontal inset applied to both sides of each segment
	ScoreInsetX   float64 `yaml:"score_inset_x"`   // Inset of the trailing edge used for scoring
	AboveHeight   float64 `yaml:"above_height"`    // Height of the segment above the gap
	BelowHeight   float64 `yaml:"below_height"`    // Height of the segment below the gap
	GapSize       float64 `yaml:"gap_size"`
	Spacing       float64 `yaml:"spacing"`        // Spawn-trigger distance between obstacles
	InitialOffset float64 `yaml:"initial_offset"` // Distance from the avatar to the first obstacle
}

// FlappyAvatar defines the avatar sprite and its inset hitbox.
type FlappyAvatar struct {
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Hitbox FlappyHitbox `yaml:"hitbox"`
}

// FlappyHitbox is an inset rectangle relative to the sprite's top-left corner.
type FlappyHitbox struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// FlappyDisplay controls how world units map to terminal cells.
type FlappyDisplay struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Stars      int     `yaml:"stars"` // Background stars, 0 disables them
}

// AudioConfig controls sound effects and background music.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}
