package msdf

// windingSamples is the number of chords each curved edge is split into for
// the inside test.
const windingSamples = 8

// chord is one straight piece of the polygon approximating the outline.
type chord struct {
	a, b Vec2
}

// windingPolygon flattens the shape for the crossing test. Straight edges
// stay one chord; curves become windingSamples chords. Eight chords do not
// follow a curve exactly, but the error is far below a pixel for typical
// glyph curvature.
func (s *Shape) windingPolygon() []chord {
	n := 0
	for i := range s.Contours {
		for j := range s.Contours[i].Edges {
			if s.Contours[i].Edges[j].Kind == EdgeLinear {
				n++
			} else {
				n += windingSamples
			}
		}
	}
	chords := make([]chord, 0, n)
	for i := range s.Contours {
		for j := range s.Contours[i].Edges {
			e := &s.Contours[i].Edges[j]
			if e.Kind == EdgeLinear {
				chords = append(chords, chord{e.P[0], e.P[1]})
				continue
			}
			prev := e.Point(0)
			for k := 1; k <= windingSamples; k++ {
				cur := e.Point(float64(k) / windingSamples)
				chords = append(chords, chord{prev, cur})
				prev = cur
			}
		}
	}
	return chords
}

// windingNumber sums the signed crossings of the horizontal ray from p
// towards +x over all chords.
func windingNumber(chords []chord, p Vec2) int {
	w := 0
	for i := range chords {
		a, b := chords[i].a, chords[i].b
		if a.Y <= p.Y {
			if b.Y > p.Y && b.Sub(a).Cross(p.Sub(a)) > 0 {
				w++
			}
		} else if b.Y <= p.Y && b.Sub(a).Cross(p.Sub(a)) < 0 {
			w--
		}
	}
	return w
}

// WindingNumber returns the winding number of the shape around p, using
// the same polygonal approximation as the rasterizer.
func (s *Shape) WindingNumber(p Vec2) int {
	return windingNumber(s.windingPolygon(), p)
}

// Contains reports whether p is inside the shape under the non-zero rule.
func (s *Shape) Contains(p Vec2) bool {
	return s.WindingNumber(p) != 0
}
