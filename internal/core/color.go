package core

// Color represents a foreground color for a screen cell.
// Mapped to terminal colors by the platform layer.
type Color uint8

// Predefined colors. The bright pastel-ish set mirrors the palette the
// targets cycle through; Gray marks the already-typed part of a prompt.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
