package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestIntegrateGravityOnly(t *testing.T) {
	tests := []struct {
		name              string
		gravity, terminal float64
		startVelocity     float64
	}{
		{"from rest", 0.2, 8, 0},
		{"from upward impulse", 0.2, 8, -7},
		{"heavy gravity", 3, 8, 0},
		{"already above terminal", 0.2, 8, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Avatar{Y: 100, Velocity: tc.startVelocity}
			prev := math.Inf(-1)
			for i := 0; i < 200; i++ {
				Integrate(&a, tc.gravity, tc.terminal)
				if a.Velocity > tc.terminal {
					t.Fatalf("tick %d: velocity %v exceeds terminal %v", i, a.Velocity, tc.terminal)
				}
				if i > 0 && a.Velocity < prev {
					t.Fatalf("tick %d: velocity decreased from %v to %v", i, prev, a.Velocity)
				}
				prev = a.Velocity
			}
			if a.Velocity != tc.terminal {
				t.Errorf("velocity should settle at terminal speed, got %v", a.Velocity)
			}
		})
	}
}

func TestIntegrateFiftyTickScenario(t *testing.T) {
	a := Avatar{Y: 400}

	for i := 0; i < 50; i++ {
		Integrate(&a, 0.2, 8)
	}

	if a.Velocity != 8 {
		t.Errorf("velocity = %v, expected clamp at 8", a.Velocity)
	}

	// 0.2 * (1 + ... + 40) for the unclamped ticks, then 10 ticks at 8.
	expected := 400 + 0.2*820 + 10*8.0
	if math.Abs(a.Y-expected) > 1e-6 {
		t.Errorf("y = %v, expected %v", a.Y, expected)
	}
}

func TestApplyImpulseOverridesVelocity(t *testing.T) {
	for _, v := range []float64{-7, 0, 3.5, 8} {
		a := Avatar{Velocity: v}
		ApplyImpulse(&a, -7)
		if a.Velocity != -7 {
			t.Errorf("from %v: velocity = %v, expected -7", v, a.Velocity)
		}
	}

	a := Avatar{Velocity: 5}
	for i := 0; i < 10; i++ {
		ApplyImpulse(&a, -7)
	}
	if a.Velocity != -7 {
		t.Errorf("repeated impulses should not accumulate, got %v", a.Velocity)
	}
}

func TestImpulseThenGravity(t *testing.T) {
	a := Avatar{Y: 300, Velocity: 6}
	ApplyImpulse(&a, -7)
	Integrate(&a, 0.2, 8)

	if math.Abs(a.Velocity-(-6.8)) > 1e-9 {
		t.Errorf("velocity = %v, expected -6.8", a.Velocity)
	}
	if a.Y >= 300 {
		t.Errorf("avatar should rise after an impulse, y = %v", a.Y)
	}
}

func TestAvatarHitboxInsideSprite(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig().Avatar, 400, 200)

	hb := a.HitboxRect()
	if hb.X != 410 || hb.Y != 205 || hb.W != 51 || hb.H != 31 {
		t.Errorf("HitboxRect() = %+v, expected {410 205 51 31}", hb)
	}
	if !a.Bounds().Contains(hb) {
		t.Error("hitbox should lie inside the sprite bounds")
	}
}
