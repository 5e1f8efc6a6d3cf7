package flappy

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// An 800x480 world maps onto 80x24 cells with the default 10x20 cell size.
func newRenderSession(t *testing.T) (*Session, *core.Screen) {
	t.Helper()
	s := newPlayingSession(t, 800, 480)
	return s, core.NewScreen(80, 24)
}

func TestRenderAvatar(t *testing.T) {
	s, scr := newRenderSession(t)
	s.Render(scr)

	// Avatar sprite at (400, 240) sized 70x40 covers cells x 40..46, y 12..13.
	for _, pos := range [][2]int{{40, 12}, {45, 13}, {40, 13}} {
		c := scr.GetCell(pos[0], pos[1])
		if c.Rune != AvatarChar {
			t.Errorf("cell %v = %q, expected %q", pos, c.Rune, AvatarChar)
		}
		if c.Color != core.ColorBrightGreen {
			t.Errorf("cell %v color = %v, expected skin color", pos, c.Color)
		}
	}
	if got := scr.Get(46, 12); got != AvatarBeak {
		t.Errorf("beak cell = %q, expected %q", got, AvatarBeak)
	}
	if got := scr.Get(47, 12); got != ' ' {
		t.Errorf("cell right of the avatar = %q, expected blank", got)
	}
}

func TestRenderObstacle(t *testing.T) {
	s, scr := newRenderSession(t)
	s.run.Obstacles = []Obstacle{{X: 600, GapCenter: 240}}
	s.Render(scr)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"upper segment body", 60, 2, SegmentChar},
		{"upper segment body right", 71, 6, SegmentChar},
		{"upper segment cap", 65, 7, SegmentCapTop},
		{"gap", 65, 10, ' '},
		{"lower segment cap", 65, 16, SegmentCapBot},
		{"lower segment body", 60, 21, SegmentChar},
		{"below lower segment", 65, 22, ' '},
		{"left of obstacle", 59, 4, ' '},
		{"right of obstacle", 72, 4, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scr.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if c := scr.GetCell(60, 2); c.Color != SegmentColor {
		t.Errorf("segment color = %v, expected %v", c.Color, SegmentColor)
	}
}

func TestRenderClipsOffscreenObstacles(t *testing.T) {
	s, scr := newRenderSession(t)
	s.run.Obstacles = []Obstacle{{X: -100, GapCenter: 240}, {X: 760, GapCenter: 240}}
	s.Render(scr)

	if got := scr.Get(0, 4); got != SegmentChar {
		t.Errorf("partially visible obstacle cell = %q, expected %q", got, SegmentChar)
	}
	if got := scr.Get(79, 4); got != SegmentChar {
		t.Errorf("obstacle at the right edge = %q, expected %q", got, SegmentChar)
	}
}

func TestRenderHUD(t *testing.T) {
	s, scr := newRenderSession(t)
	s.run.Score = 12
	s.Render(scr)

	row := scr.Row(0)
	if !strings.Contains(row, "Score: 12") {
		t.Errorf("HUD row = %q, expected the score", row)
	}
	if !strings.Contains(row, "00:00") {
		t.Errorf("HUD row = %q, expected the clock", row)
	}
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over box drawn while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	s, scr := newRenderSession(t)
	s.run.Avatar.Y = 1000
	s.Tick(frame)
	s.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("expected game over box, got:\n%s", out)
	}
	if !strings.Contains(out, "Space to restart") {
		t.Error("expected restart hint")
	}
}

func TestRenderWithoutSkinUsesDefaultColor(t *testing.T) {
	s := newTestSession(t, 800, 480)
	scr := core.NewScreen(80, 24)
	s.Render(scr)

	if c := scr.GetCell(40, 12); c.Color != core.ColorYellow {
		t.Errorf("avatar color = %v, expected yellow before a skin is chosen", c.Color)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatElapsed(time.Duration(tt.secs)*time.Second); got != tt.want {
			t.Errorf("formatElapsed(%ds) = %q, expected %q", tt.secs, got, tt.want)
		}
	}
}

func TestRenderStarsBehindObstacles(t *testing.T) {
	s, scr := newRenderSession(t)
	s.run.Obstacles = []Obstacle{{X: 600, GapCenter: 240}}
	s.stars = []Star{
		{X: 605, Y: 50, BaseRadius: 1},  // Inside the upper segment at cell (60, 2)
		{X: 300, Y: 200, BaseRadius: 1}, // Open sky at cell (30, 10)
		{X: 405, Y: 245, BaseRadius: 2}, // Under the avatar at cell (40, 12)
	}
	s.Render(scr)

	if got := scr.Get(60, 2); got != SegmentChar {
		t.Errorf("star drawn over the obstacle: cell = %q", got)
	}
	if got := scr.Get(40, 12); got != AvatarChar {
		t.Errorf("star drawn over the avatar: cell = %q", got)
	}
	c := scr.GetCell(30, 10)
	if c.Rune != StarMid || c.Color != StarColor {
		t.Errorf("open sky cell = %+v, expected %q in the star color", c, StarMid)
	}
}

func TestRenderStarsTwinkle(t *testing.T) {
	s, scr := newRenderSession(t)
	s.stars = []Star{{X: 300, Y: 200, BaseRadius: 1.5}}

	s.Render(scr)
	if got := scr.Get(30, 10); got != StarMid {
		t.Errorf("star at t=0 = %q, expected %q", got, StarMid)
	}

	// sin(2t) peaks at t = π/4 s, swelling the radius to 2.25.
	s.run.Elapsed = 785 * time.Millisecond
	s.Render(scr)
	if got := scr.Get(30, 10); got != StarBright {
		t.Errorf("star at peak = %q, expected %q", got, StarBright)
	}
}

func TestResizeRegeneratesStars(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s, err := NewSession(cfg, 800, 480, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	before := s.Snapshot().Stars
	if len(before) != cfg.Display.Stars {
		t.Fatalf("got %d stars, expected %d", len(before), cfg.Display.Stars)
	}

	if err := s.Resize(800, 100); err == nil {
		t.Fatal("expected the tiny resize to fail")
	}
	if !slices.Equal(s.Snapshot().Stars, before) {
		t.Error("a rejected resize must keep the stars")
	}

	if err := s.Resize(1200, 600); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	after := s.Snapshot().Stars
	if len(after) != cfg.Display.Stars {
		t.Fatalf("got %d stars after resize, expected %d", len(after), cfg.Display.Stars)
	}
	if slices.Equal(after, before) {
		t.Error("resize should scatter new stars")
	}
	beyond := 0
	for _, st := range after {
		if st.X >= 1200 || st.Y >= 600 {
			t.Fatalf("star at (%v, %v) is outside the new playfield", st.X, st.Y)
		}
		if st.X >= 800 || st.Y >= 480 {
			beyond++
		}
	}
	if beyond == 0 {
		t.Error("no star uses the enlarged area")
	}
}

func TestRenderWithoutStars(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Display.Stars = 0
	s, err := NewSession(cfg, 800, 480, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	scr := core.NewScreen(80, 24)
	s.Render(scr)

	for _, r := range []rune{StarDim, StarMid, StarBright} {
		if strings.ContainsRune(scr.String(), r) {
			t.Errorf("found star %q with stars disabled", r)
		}
	}
}
