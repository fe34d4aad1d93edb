package msdf

// Contour is one closed loop of edges.
//
// The end of the last edge is expected to meet the start of the first edge;
// Shape.Validate checks this, construction does not enforce it. Edges is a
// window into the owning Shape's edge arena.
type Contour struct {
	Edges []EdgeSegment
}

// Winding returns the orientation of the contour: +1, -1, or 0 when the
// contour encloses no area.
//
// The shoelace sum of (x1-x0)(y1+y0) is taken over every edge's control
// polygon, so a contour made of two curves still has an orientation. The sum
// is positive for a clockwise loop in a y-up coordinate system.
func (c *Contour) Winding() int {
	var total float64
	for i := range c.Edges {
		pts := c.Edges[i].ControlPoints()
		for j := 1; j < len(pts); j++ {
			total += (pts[j].X - pts[j-1].X) * (pts[j].Y + pts[j-1].Y)
		}
	}
	switch {
	case total > 0:
		return 1
	case total < 0:
		return -1
	default:
		return 0
	}
}

// Bounds returns the box over all control points of the contour.
func (c *Contour) Bounds() Rect {
	r := emptyRect()
	for i := range c.Edges {
		r = r.Union(c.Edges[i].Bounds())
	}
	return r
}

// closingGap returns the distance between the end of the last edge and the
// start of the first one.
func (c *Contour) closingGap() float64 {
	if len(c.Edges) == 0 {
		return 0
	}
	return c.Edges[len(c.Edges)-1].End().Sub(c.Edges[0].Start()).Length()
}
