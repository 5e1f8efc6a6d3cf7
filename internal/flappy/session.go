// Package flappy implements a Flappy Bird-style game core.
// The player keeps an avatar airborne with upward impulses and scores a
// point for every gapped obstacle it clears. The package is pure simulation:
// it owns no goroutines, timers or I/O, and the host drives it through
// Apply, Tick, Snapshot and Resize.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Mode is the top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	Scored  int  // Obstacles cleared this tick
	Spawned int  // Obstacles appended this tick
	Crashed bool // The run ended this tick
}

// Session owns the mode, the live run, the saved run and the skin selection.
type Session struct {
	cfg    config.FlappyConfig
	shape  Shape
	rng    RandomSource
	width  float64
	height float64

	stars []Star // Regenerated whenever the size changes

	mode  Mode
	run   RunState
	saved *RunState // Non-nil while paused in the menu
	skin  int       // Catalog index, -1 until the first selection
}

// NewSession creates a session in menu mode for a width x height playfield.
// A nil rng seeds one from the clock. It fails if the configuration is
// invalid or the playfield cannot fit the obstacle geometry.
func NewSession(cfg config.FlappyConfig, width, height float64, rng RandomSource) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		cfg:   cfg,
		shape: ShapeFromConfig(cfg.Obstacles),
		rng:   rng,
		mode:  ModeMenu,
		skin:  -1,
	}
	if err := s.setSize(width, height); err != nil {
		return nil, err
	}
	s.stars = GenerateStars(s.rng, cfg.Display.Stars, s.width, s.height)
	s.run = s.freshRun()
	return s, nil
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Shape returns the obstacle geometry.
func (s *Session) Shape() Shape {
	return s.shape
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// avatarX is the horizontal anchor of the avatar: the middle of the playfield.
func (s *Session) avatarX() float64 {
	return s.width / 2
}

// freshRun builds the initial state of a new playthrough: score 0, avatar
// resting at mid-height and a single obstacle initial_offset ahead of it.
func (s *Session) freshRun() RunState {
	x := s.avatarX()
	return RunState{
		Avatar: NewAvatar(s.cfg.Avatar, x, s.height/2),
		Obstacles: []Obstacle{{
			X:         x + s.cfg.Obstacles.InitialOffset,
			GapCenter: s.nextGap(),
		}},
	}
}

func (s *Session) nextGap() float64 {
	return GenerateGapCenter(s.rng, s.height, s.shape.AboveHeight, s.shape.BelowHeight, s.shape.GapSize)
}

func (s *Session) setSize(width, height float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %v", ErrPlayfieldTooSmall, width)
	}
	if _, _, err := GapBounds(height, s.shape.AboveHeight, s.shape.BelowHeight, s.shape.GapSize); err != nil {
		return err
	}
	s.width = width
	s.height = height
	return nil
}

// Resize changes the playfield size. The avatar anchor moves to the new
// center, the stars are scattered anew and a run in progress restarts from
// scratch. If the new height
// cannot fit the obstacle geometry the old size is kept and
// ErrPlayfieldTooSmall is returned.
func (s *Session) Resize(width, height float64) error {
	if err := s.setSize(width, height); err != nil {
		return err
	}
	s.stars = GenerateStars(s.rng, s.cfg.Display.Stars, s.width, s.height)
	if s.mode == ModePlaying {
		s.run = s.freshRun()
	}
	return nil
}

// Apply feeds a command into the state machine. It reports whether the
// command had any effect; commands that are invalid in the current mode are
// ignored.
func (s *Session) Apply(cmd Command) bool {
	switch s.mode {
	case ModePlaying:
		switch cmd.Kind {
		case CmdImpulse:
			ApplyImpulse(&s.run.Avatar, s.cfg.Physics.ImpulseVelocity)
			return true
		case CmdPauseToggle:
			saved := s.run.Clone()
			s.saved = &saved
			s.mode = ModeMenu
			return true
		}

	case ModeMenu:
		switch cmd.Kind {
		case CmdSelectSkin:
			return s.selectSkin(cmd.Skin)
		case CmdPauseToggle, CmdResume, CmdImpulse:
			return s.resume()
		}

	case ModeGameOver:
		switch cmd.Kind {
		case CmdRestart, CmdImpulse:
			s.run = s.freshRun()
			s.mode = ModePlaying
			return true
		}
	}
	return false
}

// selectSkin makes skin i current and starts a fresh run. Any paused run is
// discarded.
func (s *Session) selectSkin(i int) bool {
	if _, ok := SkinAt(i); !ok {
		return false
	}
	s.skin = i
	s.saved = nil
	s.run = s.freshRun()
	s.mode = ModePlaying
	return true
}

// resume restores the saved run. The avatar is re-anchored in case the
// playfield was resized while paused.
func (s *Session) resume() bool {
	if s.saved == nil || s.skin < 0 {
		return false
	}
	s.run = s.saved.Clone()
	s.run.Avatar.X = s.avatarX()
	s.saved = nil
	s.mode = ModePlaying
	return true
}

// Tick advances a run in progress by one fixed step. frameDelta only feeds
// the elapsed-time counter; the physics step does not scale with it. Ticks
// outside ModePlaying do nothing.
func (s *Session) Tick(frameDelta time.Duration) StepResult {
	var res StepResult
	if s.mode != ModePlaying {
		return res
	}

	r := &s.run
	p := s.cfg.Physics
	r.Elapsed += frameDelta

	r.Obstacles, res.Spawned = AdvanceObstacles(r.Obstacles, p.ScrollSpeed, s.cfg.Obstacles.Spacing, s.width, s.nextGap)
	Integrate(&r.Avatar, p.Gravity, p.TerminalFallSpeed)

	// Scoring is checked before the hit test and is kept even when the
	// same obstacle ends the run.
	hitbox := r.Avatar.HitboxRect()
	for i := range r.Obstacles {
		if r.Obstacles[i].MarkScored(hitbox.X, s.shape.ScoreInsetX, s.shape.VisualWidth) {
			r.Score++
			res.Scored++
		}
		if !res.Crashed && HitsObstacle(hitbox, r.Obstacles[i], s.shape) {
			res.Crashed = true
		}
	}
	if OutOfBounds(r.Avatar, s.height) {
		res.Crashed = true
	}

	if res.Crashed {
		s.mode = ModeGameOver
		return res
	}
	r.Obstacles = RetireObstacles(r.Obstacles, s.shape.VisualWidth)
	return res
}
