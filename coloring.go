package msdf

// DefaultAngleThreshold is the default corner threshold in radians.
// A joint whose interior angle is below it is a corner: anything turning by
// more than about 8 degrees.
const DefaultAngleThreshold = 3.0

// colorCycle is the order colors advance in at every corner. Each entry
// covers two channels, and any two of them share exactly one channel.
var colorCycle = [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

// ColorEdges assigns edge colors to every contour of the shape in place.
func ColorEdges(s *Shape, angleThreshold float64) {
	for i := range s.Contours {
		ColorContour(&s.Contours[i], angleThreshold)
	}
}

// ColorContour assigns edge colors so that the two edges meeting at every
// corner have different colors.
//
// A one-edge contour is white; a two-edge contour is cyan then magenta. For
// longer contours a joint is a corner when the interior angle between the
// reversed end tangent of one edge and the start tangent of the next is
// below angleThreshold. A smooth joint has an interior angle of pi and a
// square corner pi/2.
func ColorContour(c *Contour, angleThreshold float64) {
	edges := c.Edges
	n := len(edges)
	switch n {
	case 0:
		return
	case 1:
		edges[0].Color = ColorWhite
		return
	case 2:
		edges[0].Color = ColorCyan
		edges[1].Color = ColorMagenta
		return
	}

	isCorner := make([]bool, n)
	var corners []int
	for i := range edges {
		if cornerAt(&edges[i], &edges[(i+1)%n], angleThreshold) {
			isCorner[i] = true
			corners = append(corners, i)
		}
	}

	switch len(corners) {
	case 0:
		for i := range edges {
			edges[i].Color = colorCycle[i%len(colorCycle)]
		}
	case 1:
		colorTeardrop(edges, corners[0])
	default:
		colorRuns(edges, corners, isCorner)
	}
}

// cornerAt reports whether the joint from a into b is a corner.
func cornerAt(a, b *EdgeSegment, angleThreshold float64) bool {
	interior := a.EndDirection().Neg().Angle(b.StartDirection())
	return interior < angleThreshold
}

// colorTeardrop colors a contour with a single corner. One color for every
// edge would put the same color on both sides of the corner, so the loop is
// split into three runs and the runs touching the corner differ.
func colorTeardrop(edges []EdgeSegment, corner int) {
	n := len(edges)
	runs := [3]EdgeColor{ColorCyan, ColorWhite, ColorMagenta}
	for i := range n {
		edges[(corner+1+i)%n].Color = runs[i*3/n]
	}
}

// colorRuns walks the contour from the edge after the first corner and
// advances the color after every edge that ends at a corner.
func colorRuns(edges []EdgeSegment, corners []int, isCorner []bool) {
	k := len(corners)
	runColor := make([]EdgeColor, k)
	runColor[0] = colorCycle[0]
	for r := 1; r < k; r++ {
		runColor[r] = SwitchColor(runColor[r-1])
	}
	// The last run wraps around to meet the first one.
	if last := runColor[k-1]; last == runColor[0] {
		runColor[k-1] = thirdColor(runColor[0], runColor[k-2])
	}

	n := len(edges)
	run := 0
	for i := range n {
		idx := (corners[0] + 1 + i) % n
		edges[idx].Color = runColor[run]
		if isCorner[idx] && run < k-1 {
			run++
		}
	}
}

// thirdColor returns the cycle color that is neither a nor b.
func thirdColor(a, b EdgeColor) EdgeColor {
	for _, c := range colorCycle {
		if c != a && c != b {
			return c
		}
	}
	return ColorWhite
}

// SwitchColor returns the color after current in the cyan, magenta, yellow
// cycle. Colors outside the cycle switch to cyan.
func SwitchColor(current EdgeColor) EdgeColor {
	for i, c := range colorCycle {
		if c == current {
			return colorCycle[(i+1)%len(colorCycle)]
		}
	}
	return colorCycle[0]
}
