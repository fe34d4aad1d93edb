package msdf

import "math"

// Cubic nearest-point search parameters.
const (
	cubicSearchStarts = 8
	cubicSearchSteps  = 8
)

// SignedDistance returns the distance from p to the closest point of the
// edge, clamped to t in [0, 1], with the orthogonality discriminant.
// Zero-length edges degrade to the distance to a point.
func (e *EdgeSegment) SignedDistance(p Vec2) SignedDistance {
	switch e.Kind {
	case EdgeQuadratic:
		return e.quadraticDistance(p)
	case EdgeCubic:
		return e.cubicDistance(p)
	default:
		return e.linearDistance(p)
	}
}

// distanceAt measures p against the edge point at t.
// Only endpoints carry a non-zero Dot: an interior nearest point is
// always a perpendicular foot.
func (e *EdgeSegment) distanceAt(p Vec2, t float64) SignedDistance {
	diff := p.Sub(e.Point(t))
	sd := SignedDistance{Distance: diff.Length()}
	if t == 0 || t == 1 {
		sd.Dot = math.Abs(e.Direction(t).Normalize().Dot(diff.Normalize()))
	}
	return sd
}

func (e *EdgeSegment) linearDistance(p Vec2) SignedDistance {
	a, b := e.P[0], e.P[1]
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return SignedDistance{Distance: p.Sub(a).Length()}
	}
	t := clamp01(p.Sub(a).Dot(ab) / lenSq)
	return e.distanceAt(p, t)
}

func (e *EdgeSegment) quadraticDistance(p Vec2) SignedDistance {
	// B(t) - p = a*t^2 + b*t + c
	qa := e.P[0].Sub(p)
	qb := e.P[1].Sub(p)
	qc := e.P[2].Sub(p)
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	// d/dt |B(t)-p|^2 / 2 is the cubic below.
	var roots [3]float64
	n := solveCubic(2*a.Dot(a), 3*a.Dot(b), 2*a.Dot(c)+b.Dot(b), b.Dot(c), &roots)

	best := e.distanceAt(p, 0)
	if d := e.distanceAt(p, 1); d.Less(best) {
		best = d
	}
	for _, t := range roots[:n] {
		if t <= 0 || t >= 1 || !isFinite(t) {
			continue
		}
		if d := e.distanceAt(p, t); d.Less(best) {
			best = d
		}
	}
	return best
}

// cubicDistance minimises the quintic |B(t)-p|^2 by Newton iteration from
// evenly spaced starting parameters.
func (e *EdgeSegment) cubicDistance(p Vec2) SignedDistance {
	best := e.distanceAt(p, 0)
	if d := e.distanceAt(p, 1); d.Less(best) {
		best = d
	}
	for i := 0; i <= cubicSearchStarts; i++ {
		t := float64(i) / cubicSearchStarts
		for range cubicSearchSteps {
			diff := e.Point(t).Sub(p)
			d1 := e.derivative(t)
			f := diff.Dot(d1)
			fp := d1.Dot(d1) + diff.Dot(e.secondDerivative(t))
			if fp == 0 {
				break
			}
			next := clamp01(t - f/fp)
			if next == t {
				break
			}
			t = next
		}
		if d := e.distanceAt(p, t); d.Less(best) {
			best = d
		}
	}
	return best
}

