package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
)
