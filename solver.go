package msdf

import "math"

// Polynomial root finders used by the nearest-point queries.
// Roots are written into a caller-provided array so that distance queries
// in the per-pixel loop do not allocate.

// solveQuadratic finds the real roots of a*x^2 + b*x + c = 0.
// It returns the number of roots written to roots. When a is zero (or too
// small to divide by) the equation is treated as linear.
func solveQuadratic(a, b, c float64, roots *[3]float64) int {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c, roots)
	}

	disc := sc1*sc1 - 4*sc0
	if !isFinite(disc) {
		roots[0] = -sc1
		roots[1] = sc0 / roots[0]
		if !isFinite(roots[1]) {
			return 1
		}
		return 2
	}
	switch {
	case disc < 0:
		return 0
	case disc == 0:
		roots[0] = -0.5 * sc1
		return 1
	}

	// Stable form: avoid cancellation between -b and sqrt(disc).
	r0 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	r1 := sc0 / r0
	roots[0] = r0
	if !isFinite(r1) {
		return 1
	}
	roots[1] = r1
	return 2
}

func solveLinear(b, c float64, roots *[3]float64) int {
	r := -c / b
	if isFinite(r) {
		roots[0] = r
		return 1
	}
	if b == 0 && c == 0 {
		roots[0] = 0
		return 1
	}
	return 0
}

// solveCubic finds the real roots of a*x^3 + b*x^2 + c*x + d = 0 using
// Blinn's method as described at https://momentsingraphics.de/CubicRoots.html.
// Roots are not sorted.
func solveCubic(a, b, c, d float64, roots *[3]float64) int {
	const oneThird = 1.0 / 3.0
	inv := 1 / a
	c2 := b * (oneThird * inv)
	c1 := c * (oneThird * inv)
	c0 := d * inv
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return solveQuadratic(b, c, d, roots)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	if disc < 0 {
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		roots[0] = math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2
		return 1
	}
	if disc == 0 {
		t := math.Copysign(math.Sqrt(-d0), de)
		roots[0] = t - c2
		roots[1] = -2*t - c2
		return 2
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	sin, cos := math.Sincos(th)
	ss3 := sin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	roots[0] = t*cos - c2
	roots[1] = t*0.5*(-cos+ss3) - c2
	roots[2] = t*0.5*(-cos-ss3) - c2
	return 3
}

// clamp01 limits t to the unit interval.
func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
