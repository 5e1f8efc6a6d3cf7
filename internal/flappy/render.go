package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar    = '●'
	AvatarBeak    = '▶'
	SegmentChar   = '█'
	SegmentCapTop = '▀' // Lower edge of the segment above the gap
	SegmentCapBot = '▄' // Upper edge of the segment below the gap
	SegmentColor  = core.ColorGreen
	HUDColor      = core.ColorWhite
	StarDim       = '·'
	StarMid       = '∙'
	StarBright    = '*'
	StarColor     = core.ColorGray
)

// Render draws the current state into dst. World coordinates are mapped to
// cells using the display section of the config; anything outside the
// screen is clipped.
func (s *Session) Render(dst *core.Screen) {
	snap := s.Snapshot()
	cw, ch := s.cfg.Display.CellWidth, s.cfg.Display.CellHeight

	dst.Clear()

	// Stars go first so everything else covers them.
	for _, st := range snap.Stars {
		dst.SetColored(core.FloorDiv(st.X, cw), core.FloorDiv(st.Y, ch), starGlyph(st.Radius(snap.Elapsed)), StarColor)
	}
	for _, o := range snap.Obstacles {
		s.drawObstacle(dst, o, cw, ch)
	}
	drawAvatar(dst, snap, cw, ch)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), HUDColor)
	clock := formatElapsed(snap.Elapsed)
	dst.DrawTextColored(dst.Width()-len(clock)-2, 0, clock, core.ColorGray)

	if snap.Mode == ModeGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", snap.Score))
	}
}

func (s *Session) drawObstacle(dst *core.Screen, o Obstacle, cw, ch float64) {
	x0, y0, x1, y1 := o.TopSprite(s.shape).Cells(cw, ch)
	dst.FillCells(x0, y0, x1, y1, SegmentChar, SegmentColor)
	if y1 > y0 {
		dst.FillCells(x0, y1-1, x1, y1, SegmentCapTop, SegmentColor)
	}

	x0, y0, x1, y1 = o.BottomSprite(s.shape).Cells(cw, ch)
	dst.FillCells(x0, y0, x1, y1, SegmentChar, SegmentColor)
	if y1 > y0 {
		dst.FillCells(x0, y0, x1, y0+1, SegmentCapBot, SegmentColor)
	}
}

func drawAvatar(dst *core.Screen, snap Snapshot, cw, ch float64) {
	color := core.ColorYellow
	if snap.HasSkin {
		color = snap.Skin.Color
	}
	x0, y0, x1, y1 := snap.Avatar.Bounds().Cells(cw, ch)
	dst.FillCells(x0, y0, x1, y1, AvatarChar, color)
	if x1 > x0 {
		dst.SetColored(x1-1, y0, AvatarBeak, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
