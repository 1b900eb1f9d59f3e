package core

// Color is a palette index shared by every surface. Terminal surfaces map it
// to ANSI 256-color codes, window surfaces to RGBA.
type Color uint8

// Palette entries used by the runner.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorOrange
	ColorGray
	ColorBrightGreen
	ColorBrightRed
)

// String returns the palette name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightRed:
		return "bright-red"
	default:
		return "unknown"
	}
}
