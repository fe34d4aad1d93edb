// Package source turns outlines from font and vector libraries into msdf
// vertex streams.
//
// Every source hands back vertices in its own units together with the
// y-axis flip msdf.FromVertices needs to put the outline in bitmap
// orientation (y down). Contours are always closed; see CloseContours.
package source

import (
	"errors"

	"github.com/gogpu/msdf"
)

var (
	// ErrNoGlyph is returned when a font has no glyph for a rune.
	ErrNoGlyph = errors.New("source: font has no glyph for rune")

	// ErrNotOutline is returned for glyphs stored as bitmaps or SVG
	// documents instead of outlines.
	ErrNotOutline = errors.New("source: glyph is not an outline")
)

// Glyph is one glyph outline ready for msdf.FromVertices.
type Glyph struct {
	Rune     rune
	Vertices []msdf.Vertex

	// FlipY is the flipY argument FromVertices needs for a y-down shape.
	FlipY bool

	// UnitsPerEm is the font's design grid size. Vertices are in font
	// units, so size/UnitsPerEm scales them to a pixel size.
	UnitsPerEm float64
}

// Empty reports whether the glyph has no outline, like a space.
func (g *Glyph) Empty() bool {
	return len(g.Vertices) == 0
}

// Shape builds the glyph's shape at the given pixel size (em height).
func (g *Glyph) Shape(size float64) *msdf.Shape {
	scale := 1.0
	if g.UnitsPerEm > 0 {
		scale = size / g.UnitsPerEm
	}
	return msdf.FromVertices(g.Vertices, scale, g.FlipY)
}

// Font looks up glyph outlines by rune.
type Font interface {
	Glyph(r rune) (*Glyph, error)
}
