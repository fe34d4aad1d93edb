package source

import "github.com/gogpu/msdf"

// closeEpsilon is the gap below which a contour counts as closed.
const closeEpsilon = 1e-9

// CloseContours appends a straight closing edge to every contour whose last
// point is not its first. CFF outlines and many path formats leave the
// closing segment implicit; msdf needs it explicit. A contour that already
// closes is left alone, so no zero-length edge is added. The input is not
// modified.
func CloseContours(vs []msdf.Vertex) []msdf.Vertex {
	out := make([]msdf.Vertex, 0, len(vs)+4)

	var start, pen msdf.Vec2
	drawn := false
	closeOpen := func() {
		if drawn && !pen.Approx(start, closeEpsilon) {
			out = append(out, msdf.Vertex{Kind: msdf.VertexLine, X: start.X, Y: start.Y})
		}
		drawn = false
	}

	for _, v := range vs {
		if v.Kind == msdf.VertexMove {
			closeOpen()
			start = msdf.V2(v.X, v.Y)
			pen = start
		} else {
			drawn = true
			pen = msdf.V2(v.X, v.Y)
		}
		out = append(out, v)
	}
	closeOpen()
	return out
}
