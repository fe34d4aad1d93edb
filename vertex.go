package msdf

import "log/slog"

// VertexKind is the command of one entry in an outline vertex stream.
type VertexKind uint8

const (
	// VertexMove starts a new contour at (X, Y).
	VertexMove VertexKind = iota + 1

	// VertexLine draws a straight edge to (X, Y).
	VertexLine

	// VertexQuad draws a quadratic edge through control (CX, CY) to (X, Y).
	VertexQuad

	// VertexCubic draws a cubic edge through controls (CX, CY) and
	// (CX1, CY1) to (X, Y).
	VertexCubic
)

// String returns a string representation of the vertex kind.
func (k VertexKind) String() string {
	switch k {
	case VertexMove:
		return "Move"
	case VertexLine:
		return "Line"
	case VertexQuad:
		return "Quad"
	case VertexCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Vertex is one command of an outline vertex stream, in outline source units.
// Integer font units and fractional design units are both fine.
type Vertex struct {
	Kind     VertexKind
	X, Y     float64
	CX, CY   float64
	CX1, CY1 float64
}

// FromVertices builds a shape from a vertex stream.
//
// Each VertexMove starts a new contour and contributes no edge; every other
// command appends one edge that starts at the previous end point. Points are
// multiplied by scale, and with flipY the y axis is negated (outline sources
// are usually y-up, bitmaps y-down). Commands of unknown kind are skipped and
// logged at Warn level; use FromVerticesStrict to reject them instead.
func FromVertices(vs []Vertex, scale float64, flipY bool) *Shape {
	s, _ := buildShape(vs, scale, flipY, false)
	return s
}

// FromVerticesStrict is like FromVertices but returns a *VertexError for the
// first command of unknown kind.
func FromVerticesStrict(vs []Vertex, scale float64, flipY bool) (*Shape, error) {
	return buildShape(vs, scale, flipY, true)
}

func buildShape(vs []Vertex, scale float64, flipY bool, strict bool) (*Shape, error) {
	ys := scale
	if flipY {
		ys = -scale
	}
	pt := func(x, y float64) Vec2 { return Vec2{X: x * scale, Y: y * ys} }

	edges := 0
	for i := range vs {
		if vs[i].Kind != VertexMove {
			edges++
		}
	}
	s := NewShape(edges)

	var pen Vec2
	skipped := 0
	for i := range vs {
		v := &vs[i]
		switch v.Kind {
		case VertexMove:
			s.finishContour()
			pen = pt(v.X, v.Y)
		case VertexLine:
			end := pt(v.X, v.Y)
			s.appendEdge(Linear(pen, end))
			pen = end
		case VertexQuad:
			end := pt(v.X, v.Y)
			s.appendEdge(Quadratic(pen, pt(v.CX, v.CY), end))
			pen = end
		case VertexCubic:
			end := pt(v.X, v.Y)
			s.appendEdge(Cubic(pen, pt(v.CX, v.CY), pt(v.CX1, v.CY1), end))
			pen = end
		default:
			if strict {
				return nil, &VertexError{Index: i, Kind: v.Kind}
			}
			skipped++
		}
	}
	s.finishContour()

	if skipped > 0 {
		Logger().Warn("msdf: skipped unknown vertex commands",
			slog.Int("skipped", skipped), slog.Int("vertices", len(vs)))
	}
	Logger().Debug("msdf: shape built",
		slog.Int("contours", len(s.Contours)), slog.Int("edges", s.EdgeCount()))
	return s, nil
}
