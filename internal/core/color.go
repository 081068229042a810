package core

// Color is a palette entry for a screen cell.
// The terminal frontend maps each entry to an ANSI 256-colour code.
type Color uint8

// Palette used by the brick field, power-ups and HUD.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCyan
	ColorGray
)

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
