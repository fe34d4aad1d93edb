package source

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/msdf"
)

// FromCanvasPath converts a canvas path to a vertex stream. Elliptical arcs
// are replaced by cubic approximations first; p itself is not modified.
// Coordinates pass through unchanged.
func FromCanvasPath(p *canvas.Path) []msdf.Vertex {
	p = p.Copy().ReplaceArcs()

	var vs []msdf.Vertex
	var pen msdf.Vec2
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		to := msdf.V2(end.X, end.Y)
		switch s.Cmd() {
		case canvas.MoveToCmd:
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexMove, X: to.X, Y: to.Y})
		case canvas.LineToCmd:
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexLine, X: to.X, Y: to.Y})
		case canvas.CloseCmd:
			// Close ends at the subpath start; drop it when already there.
			if to == pen {
				continue
			}
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexLine, X: to.X, Y: to.Y})
		case canvas.QuadToCmd:
			c := s.CP1()
			vs = append(vs, msdf.Vertex{Kind: msdf.VertexQuad, X: to.X, Y: to.Y, CX: c.X, CY: c.Y})
		case canvas.CubeToCmd:
			c0, c1 := s.CP1(), s.CP2()
			vs = append(vs, msdf.Vertex{
				Kind: msdf.VertexCubic, X: to.X, Y: to.Y,
				CX: c0.X, CY: c0.Y, CX1: c1.X, CY1: c1.Y,
			})
		default:
			continue
		}
		pen = to
	}
	return CloseContours(vs)
}

// ParseSVGPath parses SVG path data ("M0 0 L10 0 ...") into a vertex
// stream. SVG coordinates grow downwards, so the stream needs no flip.
func ParseSVGPath(d string) ([]msdf.Vertex, error) {
	p, err := canvas.ParseSVGPath(d)
	if err != nil {
		return nil, fmt.Errorf("source: parse svg path: %w", err)
	}
	return FromCanvasPath(p), nil
}
