package msdf

// closeTolerance is the largest gap, in shape units, tolerated between the
// end and start of a contour.
const closeTolerance = 0.001

// Shape is a set of contours: an outer boundary plus any holes.
//
// All edges of a shape live in one arena slice. Contours hold windows into
// it, so building a shape costs one edge allocation regardless of the edge
// count, and Release drops every edge at once.
type Shape struct {
	Contours []Contour

	arena []EdgeSegment
	open  int // arena index where the contour being built starts
}

// NewShape creates an empty shape with room for edgeHint edges.
func NewShape(edgeHint int) *Shape {
	if edgeHint < 0 {
		edgeHint = 0
	}
	return &Shape{arena: make([]EdgeSegment, 0, edgeHint)}
}

// AddContour copies edges into the shape's arena as a new contour.
// An empty edge list adds nothing.
func (s *Shape) AddContour(edges ...EdgeSegment) {
	s.finishContour()
	s.arena = append(s.arena, edges...)
	s.finishContour()
}

// appendEdge adds an edge to the contour under construction.
func (s *Shape) appendEdge(e EdgeSegment) {
	s.arena = append(s.arena, e)
}

// finishContour closes the contour under construction, if it has edges.
// The three-index slice keeps appends to one contour from spilling into the
// next.
func (s *Shape) finishContour() {
	end := len(s.arena)
	if end > s.open {
		s.Contours = append(s.Contours, Contour{Edges: s.arena[s.open:end:end]})
	}
	s.open = end
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for i := range s.Contours {
		n += len(s.Contours[i].Edges)
	}
	return n
}

// Bounds returns the box over every endpoint and control point.
//
// This over-approximates curves (the control hull contains the curve) and
// is meant for fitting and centering, not clipping. An empty shape returns
// an inverted box for which IsEmpty is true.
func (s *Shape) Bounds() Rect {
	r := emptyRect()
	for i := range s.Contours {
		r = r.Union(s.Contours[i].Bounds())
	}
	return r
}

// Validate checks that every contour is closed within 0.001 units.
// It returns a *ContourError for the first open contour.
func (s *Shape) Validate() error {
	for i := range s.Contours {
		if gap := s.Contours[i].closingGap(); gap > closeTolerance {
			return &ContourError{Index: i, Gap: gap}
		}
	}
	return nil
}

// Release drops the shape's contours and edge arena.
// The shape is empty afterwards and may be reused.
func (s *Shape) Release() {
	s.Contours = nil
	s.arena = nil
	s.open = 0
}
