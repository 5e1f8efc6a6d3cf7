package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Skin is a purely cosmetic avatar variant.
type Skin struct {
	Name  string
	Color core.Color
}

var skins = []Skin{
	{Name: "Green", Color: core.ColorBrightGreen},
	{Name: "Purple", Color: core.ColorMagenta},
	{Name: "Pink", Color: core.ColorPink},
	{Name: "Blue", Color: core.ColorBlue},
	{Name: "Orange", Color: core.ColorOrange},
}

// Skins returns the fixed skin catalog in menu order.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// SkinAt returns the skin at index i of the catalog.
func SkinAt(i int) (Skin, bool) {
	if i < 0 || i >= len(skins) {
		return Skin{}, false
	}
	return skins[i], true
}
