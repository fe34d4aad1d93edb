package msdf

import "math"

// GlyphOptions configures GenerateForGlyph.
type GlyphOptions struct {
	// Width and Height of the output bitmap in pixels.
	// Default: 48x48
	Width, Height int

	// Padding is the empty margin, in pixels, kept on every side of the
	// glyph so the distance field has room to fall off.
	// Default: 2
	Padding float64

	// Range is the distance range in output pixels. It is converted to
	// shape units with the fitted scale, so edges look equally sharp at
	// every glyph size.
	// Default: 4
	Range float64

	// AngleThreshold is the corner threshold used by Bake.
	// Default: 3.0
	AngleThreshold float64

	// Workers bounds row concurrency; zero means GOMAXPROCS.
	Workers int
}

// DefaultGlyphOptions returns the default glyph options.
func DefaultGlyphOptions() GlyphOptions {
	return GlyphOptions{
		Width:          48,
		Height:         48,
		Padding:        2,
		Range:          4,
		AngleThreshold: DefaultAngleThreshold,
	}
}

// GenerateForGlyph fits a colored shape into the bitmap and rasterizes it.
//
// The scale is the largest uniform scale that fits the shape bounds into
// (size - 2*Padding) on both axes; the shape is then centered. A shape with
// no geometry (empty or inverted bounds) is not an error: it yields a
// uniform 127 bitmap of the requested size.
func GenerateForGlyph(s *Shape, opts GlyphOptions) (*Result, error) {
	cfg := Config{
		Width:          opts.Width,
		Height:         opts.Height,
		Range:          opts.Range,
		AngleThreshold: opts.AngleThreshold,
		Scale:          1,
		Workers:        opts.Workers,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var bounds Rect
	if s != nil {
		bounds = s.Bounds()
	} else {
		bounds = emptyRect()
	}
	if bounds.IsEmpty() {
		res, err := newResult(opts.Width, opts.Height)
		if err != nil {
			return nil, err
		}
		res.Scale = 1
		res.Range = opts.Range
		res.fill(midGray)
		return res, nil
	}

	scale := fitScale(bounds, float64(opts.Width), float64(opts.Height), opts.Padding)
	center := bounds.Center()
	cfg.Scale = scale
	cfg.Translate = Vec2{
		X: float64(opts.Width)/2 - center.X*scale,
		Y: float64(opts.Height)/2 - center.Y*scale,
	}
	cfg.Range = opts.Range / scale
	return Generate(s, cfg)
}

// fitScale returns the uniform scale that fits bounds into the padded
// bitmap. Padding that leaves no room is ignored.
func fitScale(bounds Rect, width, height, padding float64) float64 {
	availW := width - 2*padding
	availH := height - 2*padding
	if availW <= 0 || availH <= 0 {
		availW, availH = width, height
	}

	w, h := bounds.Width(), bounds.Height()
	switch {
	case w > 0 && h > 0:
		return math.Min(availW/w, availH/h)
	case w > 0:
		return availW / w
	case h > 0:
		return availH / h
	default:
		return 1
	}
}

// Bake builds a shape from a vertex stream, colors it, and fits it into a
// bitmap. It is the one-call path from an outline source to a bitmap.
func Bake(vs []Vertex, scale float64, flipY bool, opts GlyphOptions) (*Result, error) {
	s := FromVertices(vs, scale, flipY)
	defer s.Release()
	ColorEdges(s, opts.AngleThreshold)
	return GenerateForGlyph(s, opts)
}
