package msdf

import "math"

// Rect is an axis-aligned box in shape space.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// emptyRect returns an inverted box that any Include call will replace.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle is inverted or not finite.
// A zero-area box (a single point or an axis-aligned line) is not empty.
func (r Rect) IsEmpty() bool {
	if r.MinX > r.MaxX || r.MinY > r.MaxY {
		return true
	}
	return !isFinite(r.MinX) || !isFinite(r.MinY) || !isFinite(r.MaxX) || !isFinite(r.MaxY)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{
		X: (r.MinX + r.MaxX) / 2,
		Y: (r.MinY + r.MaxY) / 2,
	}
}

// Include returns the smallest rectangle containing r and p.
func (r Rect) Include(p Vec2) Rect {
	return Rect{
		MinX: min(r.MinX, p.X),
		MinY: min(r.MinY, p.Y),
		MaxX: max(r.MaxX, p.X),
		MaxY: max(r.MaxY, p.Y),
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// Expand returns a rectangle expanded by the given margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}
