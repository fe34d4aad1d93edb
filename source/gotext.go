package source

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/msdf"
)

// Typesetting reads glyph outlines with github.com/go-text/typesetting.
// The underlying font.Face is read-only, so Glyph is safe for concurrent
// use.
type Typesetting struct {
	face *font.Face
}

// ParseTypesetting parses TrueType or OpenType font data.
func ParseTypesetting(data []byte) (*Typesetting, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("source: parse font: %w", err)
	}
	return NewTypesetting(face), nil
}

// NewTypesetting wraps an already parsed face.
func NewTypesetting(face *font.Face) *Typesetting {
	return &Typesetting{face: face}
}

// Glyph returns the outline of r in font units.
func (t *Typesetting) Glyph(r rune) (*Glyph, error) {
	gid, ok := t.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("source: rune %q: %w", r, ErrNoGlyph)
	}
	outline, ok := t.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("source: rune %q: %w", r, ErrNotOutline)
	}

	vs := make([]msdf.Vertex, 0, len(outline.Segments)+4)
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexMove, X: float64(a[0].X), Y: float64(a[0].Y)})
		case opentype.SegmentOpLineTo:
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexLine, X: float64(a[0].X), Y: float64(a[0].Y)})
		case opentype.SegmentOpQuadTo:
			vs = append(vs, msdf.Vertex{
				Kind: msdf.VertexQuad, X: float64(a[1].X), Y: float64(a[1].Y),
				CX: float64(a[0].X), CY: float64(a[0].Y),
			})
		case opentype.SegmentOpCubeTo:
			vs = append(vs, msdf.Vertex{
				Kind: msdf.VertexCubic, X: float64(a[2].X), Y: float64(a[2].Y),
				CX: float64(a[0].X), CY: float64(a[0].Y),
				CX1: float64(a[1].X), CY1: float64(a[1].Y),
			})
		}
	}

	msdf.Logger().Debug("source: go-text glyph loaded",
		slog.String("rune", string(r)),
		slog.Int("glyph", int(gid)),
		slog.Int("segments", len(outline.Segments)))

	// OpenType outlines are y-up.
	return &Glyph{
		Rune:       r,
		Vertices:   CloseContours(vs),
		FlipY:      true,
		UnitsPerEm: float64(t.face.Upem()),
	}, nil
}
