package flappy

import (
	"errors"
	"fmt"
)

// ErrPlayfieldTooSmall means the playfield cannot fit both obstacle segments
// and the gap, so no gap center can be generated.
var ErrPlayfieldTooSmall = errors.New("playfield too small for obstacle geometry")

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// GapBounds returns the range of valid gap centers. The segment above the
// gap must end at or below y=0 and the segment below must end at or above
// playfieldHeight, so the interval is
// [aboveHeight + gapSize/2, playfieldHeight - belowHeight - gapSize/2].
func GapBounds(playfieldHeight, aboveHeight, belowHeight, gapSize float64) (lo, hi float64, err error) {
	lo = aboveHeight + gapSize/2
	hi = playfieldHeight - belowHeight - gapSize/2
	if lo > hi {
		return lo, hi, fmt.Errorf("%w: need height >= %v, have %v",
			ErrPlayfieldTooSmall, aboveHeight+belowHeight+gapSize, playfieldHeight)
	}
	return lo, hi, nil
}

// GenerateGapCenter draws a uniformly distributed gap center.
// Callers must ensure GapBounds succeeds for these dimensions; an empty
// interval is a configuration error and panics.
func GenerateGapCenter(src RandomSource, playfieldHeight, aboveHeight, belowHeight, gapSize float64) float64 {
	lo, hi, err := GapBounds(playfieldHeight, aboveHeight, belowHeight, gapSize)
	if err != nil {
		panic(err)
	}
	return lo + src.Float64()*(hi-lo)
}
