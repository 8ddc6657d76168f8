package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color; games only pick semantics.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
