package flappy

import (
	"math"
	"time"
)

// Star is a background point that pulses over time. It is purely visual.
type Star struct {
	X, Y       float64
	BaseRadius float64 // In [0.5, 2)
	Phase      float64 // In [0, 2π)
}

// GenerateStars scatters n stars uniformly over a width x height playfield.
func GenerateStars(src RandomSource, n int, width, height float64) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:          src.Float64() * width,
			Y:          src.Float64() * height,
			BaseRadius: src.Float64()*1.5 + 0.5,
			Phase:      src.Float64() * 2 * math.Pi,
		}
	}
	return stars
}

// Radius returns the pulsing radius at time t: the base radius scaled by a
// factor that swings between 0.5 and 1.5.
func (s Star) Radius(t time.Duration) float64 {
	pulse := math.Sin(t.Seconds()*2+s.Phase)*0.5 + 1
	return s.BaseRadius * pulse
}

// starGlyph picks a character for a star of the given radius.
func starGlyph(radius float64) rune {
	switch {
	case radius < 0.9:
		return StarDim
	case radius < 1.8:
		return StarMid
	default:
		return StarBright
	}
}
