package msdf

// EdgeColor selects which output channels an edge contributes to.
// Edges meeting at a corner get different colors so the channel median
// keeps the corner sharp.
type EdgeColor uint8

const (
	// ColorBlack contributes to no channel.
	ColorBlack EdgeColor = 0

	// ColorRed contributes to the red channel.
	ColorRed EdgeColor = 1 << (iota - 1)

	// ColorGreen contributes to the green channel.
	ColorGreen

	// ColorBlue contributes to the blue channel.
	ColorBlue

	// ColorYellow combines red and green.
	ColorYellow = ColorRed | ColorGreen

	// ColorCyan combines green and blue.
	ColorCyan = ColorGreen | ColorBlue

	// ColorMagenta combines red and blue.
	ColorMagenta = ColorRed | ColorBlue

	// ColorWhite contributes to all channels.
	ColorWhite = ColorRed | ColorGreen | ColorBlue
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// Has reports whether c includes every channel of ch.
func (c EdgeColor) Has(ch EdgeColor) bool { return ch != ColorBlack && c&ch == ch }

// channels lists the single-channel colors in output byte order.
var channels = [3]EdgeColor{ColorRed, ColorGreen, ColorBlue}
