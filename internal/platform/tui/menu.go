package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Menu styles
var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	menuPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	menuScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))
)

// skinMenu tracks the cursor of the skin picker.
type skinMenu struct {
	cursor int
	skins  []flappy.Skin
}

func newSkinMenu() skinMenu {
	return skinMenu{skins: flappy.Skins()}
}

// move shifts the cursor by delta, wrapping around the catalog.
func (sm skinMenu) move(delta int) skinMenu {
	n := len(sm.skins)
	if n == 0 {
		return sm
	}
	sm.cursor = ((sm.cursor+delta)%n + n) % n
	return sm
}

// view renders the menu panel for snap. The footer line carries
// volume and key hints.
func (sm skinMenu) view(snap flappy.Snapshot, footer string) string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("F L A P P Y"))
	b.WriteString("\n\n")
	b.WriteString("Choose your bird\n\n")

	for i, skin := range sm.skins {
		cursor := "  "
		if i == sm.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d  %s", cursor, i+1, styleFor(skin.Color).Render(skin.Name))
		if snap.HasSkin && snap.Skin.Name == skin.Name {
			line += menuHintStyle.Render("  (current)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if snap.Paused {
		b.WriteString("\n")
		b.WriteString(menuScoreStyle.Render(fmt.Sprintf("Current Score: %d", snap.SavedScore)))
		b.WriteString("\n")
		b.WriteString(menuHintStyle.Render("Press Esc to resume"))
		b.WriteString("\n")
	}

	if footer != "" {
		b.WriteString("\n")
		b.WriteString(menuHintStyle.Render(footer))
	}

	return menuPanelStyle.Render(b.String())
}
