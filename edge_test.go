package msdf

import (
	"math"
	"testing"
)

func TestEdgeKindString(t *testing.T) {
	tests := []struct {
		k    EdgeKind
		want string
	}{
		{EdgeLinear, "Linear"},
		{EdgeQuadratic, "Quadratic"},
		{EdgeCubic, "Cubic"},
		{EdgeKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("EdgeKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestEdgeColorString(t *testing.T) {
	tests := []struct {
		c    EdgeColor
		want string
	}{
		{ColorBlack, "Black"},
		{ColorRed, "Red"},
		{ColorGreen, "Green"},
		{ColorBlue, "Blue"},
		{ColorYellow, "Yellow"},
		{ColorCyan, "Cyan"},
		{ColorMagenta, "Magenta"},
		{ColorWhite, "White"},
		{EdgeColor(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("EdgeColor(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestEdgeColorHas(t *testing.T) {
	tests := []struct {
		c       EdgeColor
		r, g, b bool
	}{
		{ColorBlack, false, false, false},
		{ColorCyan, false, true, true},
		{ColorMagenta, true, false, true},
		{ColorYellow, true, true, false},
		{ColorWhite, true, true, true},
	}

	for _, tt := range tests {
		if tt.c.Has(ColorRed) != tt.r || tt.c.Has(ColorGreen) != tt.g || tt.c.Has(ColorBlue) != tt.b {
			t.Errorf("%v channels = %v/%v/%v, want %v/%v/%v", tt.c,
				tt.c.Has(ColorRed), tt.c.Has(ColorGreen), tt.c.Has(ColorBlue), tt.r, tt.g, tt.b)
		}
	}
	if ColorWhite.Has(ColorBlack) {
		t.Error("no color should contain Black")
	}
}

func TestEdgeEndpoints(t *testing.T) {
	edges := []EdgeSegment{
		Linear(V2(0, 0), V2(10, 0)),
		Quadratic(V2(0, 0), V2(5, 10), V2(10, 0)),
		Cubic(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0)),
	}

	for _, e := range edges {
		if e.Start() != V2(0, 0) {
			t.Errorf("%v Start = %v", e.Kind, e.Start())
		}
		if e.End() != V2(10, 0) {
			t.Errorf("%v End = %v", e.Kind, e.End())
		}
		if !e.Point(0).Approx(e.Start(), 1e-12) || !e.Point(1).Approx(e.End(), 1e-12) {
			t.Errorf("%v Point(0)/Point(1) = %v/%v", e.Kind, e.Point(0), e.Point(1))
		}
		if e.Color != ColorWhite {
			t.Errorf("%v default color = %v, want White", e.Kind, e.Color)
		}
		if got := len(e.ControlPoints()); got != int(e.Kind)+2 {
			t.Errorf("%v has %d control points", e.Kind, got)
		}

		r := e.Reverse()
		if r.Start() != e.End() || r.End() != e.Start() || r.Kind != e.Kind {
			t.Errorf("%v Reverse = %v", e.Kind, r.P)
		}
		if !r.Point(0.3).Approx(e.Point(0.7), 1e-12) {
			t.Errorf("%v Reverse Point(0.3) = %v, want %v", e.Kind, r.Point(0.3), e.Point(0.7))
		}
	}
}

func TestEdgePointMidway(t *testing.T) {
	q := Quadratic(V2(0, 0), V2(5, 10), V2(10, 0))
	if p := q.Point(0.5); !p.Approx(V2(5, 5), 1e-12) {
		t.Errorf("quadratic Point(0.5) = %v, want (5, 5)", p)
	}
	c := Cubic(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0))
	if p := c.Point(0.5); !p.Approx(V2(5, 7.5), 1e-12) {
		t.Errorf("cubic Point(0.5) = %v, want (5, 7.5)", p)
	}
}

func TestEdgeDirections(t *testing.T) {
	tests := []struct {
		name       string
		e          EdgeSegment
		start, end Vec2
	}{
		{"linear", Linear(V2(0, 0), V2(0, 5)), V2(0, 1), V2(0, 1)},
		{"quadratic", Quadratic(V2(0, 0), V2(10, 0), V2(10, 10)), V2(1, 0), V2(0, 1)},
		{"cubic", Cubic(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0)), V2(0, 1), V2(0, -1)},
		// control point on the start point: fall back to the chord
		{"quadratic degenerate", Quadratic(V2(0, 0), V2(0, 0), V2(10, 0)), V2(1, 0), V2(1, 0)},
		{"cubic degenerate", Cubic(V2(0, 0), V2(0, 0), V2(10, 10), V2(10, 10)), V2(1, 1).Normalize(), V2(1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.StartDirection(); !got.Approx(tt.start, 1e-12) {
				t.Errorf("StartDirection = %v, want %v", got, tt.start)
			}
			if got := tt.e.EndDirection(); !got.Approx(tt.end, 1e-12) {
				t.Errorf("EndDirection = %v, want %v", got, tt.end)
			}
		})
	}
}

func TestLinearSignedDistance(t *testing.T) {
	e := Linear(V2(0, 0), V2(10, 0))

	tests := []struct {
		name     string
		p        Vec2
		distance float64
		dot      float64
	}{
		{"above middle", V2(5, 3), 3, 0},
		{"below middle", V2(5, -2), 2, 0},
		{"on segment", V2(4, 0), 0, 0},
		{"past start", V2(-3, 4), 5, 0.6},
		{"past end along line", V2(12, 0), 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := e.SignedDistance(tt.p)
			if math.Abs(sd.Distance-tt.distance) > 1e-12 {
				t.Errorf("Distance = %v, want %v", sd.Distance, tt.distance)
			}
			if math.Abs(sd.Dot-tt.dot) > 1e-12 {
				t.Errorf("Dot = %v, want %v", sd.Dot, tt.dot)
			}
		})
	}
}

func TestDegenerateEdgeDistance(t *testing.T) {
	edges := []EdgeSegment{
		Linear(V2(1, 1), V2(1, 1)),
		Quadratic(V2(1, 1), V2(1, 1), V2(1, 1)),
		Cubic(V2(1, 1), V2(1, 1), V2(1, 1), V2(1, 1)),
	}

	for _, e := range edges {
		sd := e.SignedDistance(V2(4, 5))
		if math.IsNaN(sd.Distance) || math.IsNaN(sd.Dot) {
			t.Fatalf("%v: got NaN %+v", e.Kind, sd)
		}
		if math.Abs(sd.Distance-5) > 1e-9 {
			t.Errorf("%v: Distance = %v, want 5", e.Kind, sd.Distance)
		}
	}
}

func TestQuadraticSignedDistance(t *testing.T) {
	// x = 10t, y = 20t(1-t); the apex (5, 5) has curvature radius 2.5.
	e := Quadratic(V2(0, 0), V2(5, 10), V2(10, 0))

	tests := []struct {
		name     string
		p        Vec2
		distance float64
	}{
		{"above apex", V2(5, 6), 1},
		{"below apex", V2(5, 4), 1},
		{"at start", V2(0, 0), 0},
		{"past end", V2(13, -4), 5},
		{"on curve", e.Point(0.3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := e.SignedDistance(tt.p)
			if math.Abs(sd.Distance-tt.distance) > 1e-9 {
				t.Errorf("Distance = %v, want %v", sd.Distance, tt.distance)
			}
		})
	}
}

func TestCubicSignedDistance(t *testing.T) {
	arch := Cubic(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0))
	line := Cubic(V2(0, 0), V2(1, 0), V2(2, 0), V2(3, 0))

	tests := []struct {
		name     string
		e        EdgeSegment
		p        Vec2
		distance float64
	}{
		{"arch apex outside", arch, V2(5, 8), 0.5},
		{"arch apex inside", arch, V2(5, 7), 0.5},
		{"arch start", arch, V2(-2, 0), 2},
		{"straight cubic", line, V2(1.5, 2), 2},
		{"on curve", arch, arch.Point(0.7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := tt.e.SignedDistance(tt.p)
			if math.Abs(sd.Distance-tt.distance) > 1e-6 {
				t.Errorf("Distance = %v, want %v", sd.Distance, tt.distance)
			}
		})
	}
}

func TestSignedDistanceLess(t *testing.T) {
	tests := []struct {
		name string
		a, b SignedDistance
		want bool
	}{
		{"nearer", SignedDistance{1, 0.9}, SignedDistance{2, 0}, true},
		{"farther", SignedDistance{3, 0}, SignedDistance{2, 0.9}, false},
		{"tie head-on wins", SignedDistance{2, 0.1}, SignedDistance{2, 0.8}, true},
		{"tie glancing loses", SignedDistance{2, 0.8}, SignedDistance{2, 0.1}, false},
		{"infinite", Infinite(), SignedDistance{1e300, 1}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%s: %+v.Less(%+v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
	if !Infinite().IsInfinite() {
		t.Error("Infinite().IsInfinite() = false")
	}
}

func TestTieBreakAtSharedCorner(t *testing.T) {
	// Both edges end at (0, 0). A point on the extension of a is equally
	// far from both, but hits b head-on.
	a := Linear(V2(-10, 0), V2(0, 0))
	b := Linear(V2(0, 0), V2(0, 10))
	p := V2(1, 0)

	da, db := a.SignedDistance(p), b.SignedDistance(p)
	if da.Distance != db.Distance {
		t.Fatalf("distances differ: %v vs %v", da.Distance, db.Distance)
	}
	if !db.Less(da) {
		t.Errorf("head-on edge should win: a=%+v b=%+v", da, db)
	}
}

func TestEdgeBounds(t *testing.T) {
	e := Quadratic(V2(0, 0), V2(5, 10), V2(10, 0))
	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if got := e.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v (control hull)", got, want)
	}
}

func BenchmarkCubicSignedDistance(b *testing.B) {
	e := Cubic(V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0))
	p := V2(3, 4)
	for b.Loop() {
		_ = e.SignedDistance(p)
	}
}
