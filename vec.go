package msdf

import "math"

// Vec2 is a point or displacement in shape space.
// Shape space is whatever unit the outline source produced after scaling
// (font units, design units, pixels).
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross product).
// Positive when w is counter-clockwise from v in a y-up system.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Lerp performs linear interpolation: t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Angle returns the unsigned angle between two vectors in [0, pi].
// Returns 0 if either vector has zero length.
func (v Vec2) Angle(w Vec2) float64 {
	if v.IsZero() || w.IsZero() {
		return 0
	}
	return math.Abs(math.Atan2(v.Cross(w), v.Dot(w)))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
