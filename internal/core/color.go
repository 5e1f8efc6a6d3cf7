package core

// Color is a foreground color for a screen cell. The platform layer maps
// these to terminal colors.
type Color uint8

// Palette used by the playfield and the skin catalog.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorMagenta
	ColorPink
	ColorBlue
	ColorOrange
	ColorYellow
	ColorWhite
	ColorGray
	ColorRed
)
