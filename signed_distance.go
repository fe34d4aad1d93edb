package msdf

import "math"

// SignedDistance is the result of a nearest-point query against one edge.
//
// Distance is the unsigned distance to the closest point on the edge. The
// inside/outside sign is decided later by the winding test, for the whole
// shape at once. Dot is the absolute cosine between the edge tangent and the
// direction to the query point at that closest point: 0 means the point is
// hit head-on, 1 means it lies along the tangent past an endpoint. When two
// edges report the same Distance the one with the smaller Dot is nearer.
type SignedDistance struct {
	Distance float64
	Dot      float64
}

// Infinite returns a distance farther than any real edge.
func Infinite() SignedDistance {
	return SignedDistance{Distance: math.MaxFloat64, Dot: 1}
}

// Less reports whether d is nearer than other.
func (d SignedDistance) Less(other SignedDistance) bool {
	if d.Distance != other.Distance {
		return d.Distance < other.Distance
	}
	return d.Dot < other.Dot
}

// IsInfinite reports whether no edge has been measured yet.
func (d SignedDistance) IsInfinite() bool {
	return d.Distance == math.MaxFloat64
}
