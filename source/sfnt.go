package source

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/msdf"
)

// SFNT reads glyph outlines with golang.org/x/image/font/sfnt.
// It reuses one sfnt.Buffer and is not safe for concurrent use.
type SFNT struct {
	font   *sfnt.Font
	buffer sfnt.Buffer
}

// ParseSFNT parses TrueType or OpenType font data.
func ParseSFNT(data []byte) (*SFNT, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("source: parse sfnt: %w", err)
	}
	return NewSFNT(f), nil
}

// NewSFNT wraps an already parsed font.
func NewSFNT(f *sfnt.Font) *SFNT {
	return &SFNT{font: f}
}

// Glyph returns the outline of r in font units.
func (s *SFNT) Glyph(r rune) (*Glyph, error) {
	gid, err := s.font.GlyphIndex(&s.buffer, r)
	if err != nil {
		return nil, fmt.Errorf("source: rune %q: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("source: rune %q: %w", r, ErrNoGlyph)
	}

	upem := s.font.UnitsPerEm()
	// Loading at ppem == unitsPerEm yields coordinates in font units.
	ppem := fixed.Int26_6(upem) << 6
	segments, err := s.font.LoadGlyph(&s.buffer, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("source: rune %q: %w", r, err)
	}

	vs := make([]msdf.Vertex, 0, len(segments)+4)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p := fixedToVec(seg.Args[0])
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexMove, X: p.X, Y: p.Y})
		case sfnt.SegmentOpLineTo:
			p := fixedToVec(seg.Args[0])
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexLine, X: p.X, Y: p.Y})
		case sfnt.SegmentOpQuadTo:
			c, p := fixedToVec(seg.Args[0]), fixedToVec(seg.Args[1])
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexQuad, X: p.X, Y: p.Y, CX: c.X, CY: c.Y})
		case sfnt.SegmentOpCubeTo:
			c0, c1, p := fixedToVec(seg.Args[0]), fixedToVec(seg.Args[1]), fixedToVec(seg.Args[2])
			vs = append(vs, msdf.Vertex{
				Kind: msdf.VertexCubic, X: p.X, Y: p.Y,
				CX: c0.X, CY: c0.Y, CX1: c1.X, CY1: c1.Y,
			})
		}
	}

	msdf.Logger().Debug("source: sfnt glyph loaded",
		slog.String("rune", string(r)),
		slog.Int("glyph", int(gid)),
		slog.Int("segments", len(segments)))

	// sfnt already reports y growing downwards.
	return &Glyph{
		Rune:       r,
		Vertices:   CloseContours(vs),
		UnitsPerEm: float64(upem),
	}, nil
}

func fixedToVec(p fixed.Point26_6) msdf.Vec2 {
	return msdf.Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
