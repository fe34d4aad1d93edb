package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/msdf"
)

// Mode selects what Terminal shows.
type Mode int

const (
	// ModeField shows the RGB field.
	ModeField Mode = iota

	// ModeMedian shows the channel median in gray.
	ModeMedian
)

// halfBlock draws the upper pixel in the foreground and the lower one in
// the background, two bitmap rows per text row.
const halfBlock = "▀"

// Terminal renders res with true-color half blocks. Colors are dropped when
// the output is not a color terminal; the layout stays the same.
func Terminal(res *msdf.Result, mode Mode) string {
	pixel := func(x, y int) lipgloss.Color {
		if y >= res.Height {
			return lipgloss.Color("#000000")
		}
		r, g, b := res.Pixel(x, y)
		if mode == ModeMedian {
			m := res.Median(x, y)
			r, g, b = m, m, m
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}

	var sb strings.Builder
	for y := 0; y < res.Height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range res.Width {
			style := lipgloss.NewStyle().Foreground(pixel(x, y)).Background(pixel(x, y+1))
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}
