package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal styles.
type Color uint8

// Palette used by the race sprites and HUD.
const (
	ColorDefault Color = iota
	ColorCyan          // Neuro
	ColorMagenta       // Evil
	ColorYellow        // Coin
	ColorGreen         // Background grass
	ColorGray
	ColorBrightWhite
)

// Cell is a single screen position: a rune and its color.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the value of a cleared cell.
var blank = Cell{Rune: ' ', Color: ColorDefault}
