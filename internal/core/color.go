package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDimGray
	ColorDarkGray
	ColorPaleGreen
	ColorSkyBlue
)

// GreyShade picks one of the grey palette entries for a 0-255 grey level.
// Asteroids carry a per-rock grey in the 80-120 range.
func GreyShade(level int) Color {
	switch {
	case level < 90:
		return ColorDarkGray
	case level < 105:
		return ColorDimGray
	default:
		return ColorGray
	}
}

// StarShade maps a twinkle opacity in [0, 1] to a star color.
func StarShade(opacity float64) Color {
	switch {
	case opacity > 0.85:
		return ColorBrightWhite
	case opacity > 0.6:
		return ColorWhite
	case opacity > 0.4:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
