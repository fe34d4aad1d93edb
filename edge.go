package msdf

// EdgeKind is the geometric variant of an EdgeSegment.
// The set is closed: every switch over EdgeKind handles all three.
type EdgeKind uint8

const (
	// EdgeLinear is a straight segment P[0]→P[1].
	EdgeLinear EdgeKind = iota

	// EdgeQuadratic is a quadratic Bezier P[0], control P[1], end P[2].
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier P[0], controls P[1] and P[2], end P[3].
	EdgeCubic
)

// String returns a string representation of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of EdgeSegment.P the kind uses.
func (k EdgeKind) pointCount() int {
	switch k {
	case EdgeQuadratic:
		return 3
	case EdgeCubic:
		return 4
	default:
		return 2
	}
}

// EdgeSegment is one segment of a contour.
//
// It is a tagged value: Kind selects how many entries of P are meaningful.
// Segments are stored by value in the owning shape's edge arena and are never
// shared between contours. Color is assigned in place by the edge colorer.
type EdgeSegment struct {
	Kind  EdgeKind
	P     [4]Vec2
	Color EdgeColor
}

// Linear creates a straight edge.
func Linear(p0, p1 Vec2) EdgeSegment {
	return EdgeSegment{Kind: EdgeLinear, P: [4]Vec2{p0, p1}, Color: ColorWhite}
}

// Quadratic creates a quadratic Bezier edge.
func Quadratic(p0, p1, p2 Vec2) EdgeSegment {
	return EdgeSegment{Kind: EdgeQuadratic, P: [4]Vec2{p0, p1, p2}, Color: ColorWhite}
}

// Cubic creates a cubic Bezier edge.
func Cubic(p0, p1, p2, p3 Vec2) EdgeSegment {
	return EdgeSegment{Kind: EdgeCubic, P: [4]Vec2{p0, p1, p2, p3}, Color: ColorWhite}
}

// Start returns the first point of the edge.
func (e *EdgeSegment) Start() Vec2 {
	return e.P[0]
}

// End returns the last point of the edge.
func (e *EdgeSegment) End() Vec2 {
	return e.P[e.Kind.pointCount()-1]
}

// ControlPoints returns the points that define the edge, endpoints included.
// The slice aliases the edge.
func (e *EdgeSegment) ControlPoints() []Vec2 {
	return e.P[:e.Kind.pointCount()]
}

// Reverse returns the edge traversed from end to start, with the same color.
func (e *EdgeSegment) Reverse() EdgeSegment {
	r := *e
	n := e.Kind.pointCount()
	for i := range n {
		r.P[i] = e.P[n-1-i]
	}
	return r
}

// Point evaluates the edge at parameter t in [0, 1].
func (e *EdgeSegment) Point(t float64) Vec2 {
	p := &e.P
	switch e.Kind {
	case EdgeQuadratic:
		u := 1 - t
		return p[0].Mul(u * u).Add(p[1].Mul(2 * u * t)).Add(p[2].Mul(t * t))
	case EdgeCubic:
		u := 1 - t
		return p[0].Mul(u * u * u).
			Add(p[1].Mul(3 * u * u * t)).
			Add(p[2].Mul(3 * u * t * t)).
			Add(p[3].Mul(t * t * t))
	default:
		return p[0].Lerp(p[1], t)
	}
}

// derivative returns dB/dt at t. It is zero where control points coincide.
func (e *EdgeSegment) derivative(t float64) Vec2 {
	p := &e.P
	switch e.Kind {
	case EdgeQuadratic:
		u := 1 - t
		return p[1].Sub(p[0]).Mul(2 * u).Add(p[2].Sub(p[1]).Mul(2 * t))
	case EdgeCubic:
		u := 1 - t
		return p[1].Sub(p[0]).Mul(3 * u * u).
			Add(p[2].Sub(p[1]).Mul(6 * u * t)).
			Add(p[3].Sub(p[2]).Mul(3 * t * t))
	default:
		return p[1].Sub(p[0])
	}
}

// secondDerivative returns d²B/dt² at t.
func (e *EdgeSegment) secondDerivative(t float64) Vec2 {
	p := &e.P
	switch e.Kind {
	case EdgeQuadratic:
		return p[2].Sub(p[1].Mul(2)).Add(p[0]).Mul(2)
	case EdgeCubic:
		a := p[2].Sub(p[1].Mul(2)).Add(p[0])
		b := p[3].Sub(p[2].Mul(2)).Add(p[1])
		return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
	default:
		return Vec2{}
	}
}

// Direction returns the tangent at t. Where the derivative vanishes
// (a control point on top of an endpoint) the chord to the next distinct
// point is used instead, so corner detection still sees a direction.
func (e *EdgeSegment) Direction(t float64) Vec2 {
	d := e.derivative(t)
	if !d.IsZero() || e.Kind == EdgeLinear {
		return d
	}
	p := &e.P
	end := e.Kind.pointCount() - 1
	if t < 0.5 {
		for i := 2; i <= end; i++ {
			if c := p[i].Sub(p[0]); !c.IsZero() {
				return c
			}
		}
		return Vec2{}
	}
	for i := end - 2; i >= 0; i-- {
		if c := p[end].Sub(p[i]); !c.IsZero() {
			return c
		}
	}
	return Vec2{}
}

// StartDirection returns the unit tangent where the edge begins.
func (e *EdgeSegment) StartDirection() Vec2 {
	return e.Direction(0).Normalize()
}

// EndDirection returns the unit tangent where the edge ends.
func (e *EdgeSegment) EndDirection() Vec2 {
	return e.Direction(1).Normalize()
}

// Bounds returns the box over the edge's control points. It contains the
// curve but is not tight for curves.
func (e *EdgeSegment) Bounds() Rect {
	r := emptyRect()
	for _, p := range e.ControlPoints() {
		r = r.Include(p)
	}
	return r
}
