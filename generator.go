package msdf

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Generate rasterizes a colored shape into an MSDF bitmap.
//
// For every pixel the center is mapped into shape space with cfg's inverse
// transform. Each channel takes the nearest edge whose color includes it,
// ties going to the more head-on edge. Inside points (non-zero winding) get
// negative distances. A shape without edges yields a uniform 127 bitmap.
//
// Rows are rasterized concurrently. Every row reads the shape and writes only
// its own bytes, so the output is the same for any Workers setting.
func Generate(s *Shape, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res, err := newResult(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	res.Scale = cfg.Scale
	res.Translate = cfg.Translate
	res.Range = cfg.Range

	if s == nil || s.EdgeCount() == 0 {
		res.fill(midGray)
		return res, nil
	}
	if err := s.Validate(); err != nil {
		Logger().Warn("msdf: generating from open contour", slog.Any("err", err))
	}

	start := time.Now()
	r := rasterizer{shape: s, cfg: &cfg, chords: s.windingPolygon()}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y := range cfg.Height {
		g.Go(func() error {
			r.row(res, y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Debug("msdf: generated",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("edges", s.EdgeCount()),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

// rasterizer holds the read-only state shared by all rows.
type rasterizer struct {
	shape  *Shape
	cfg    *Config
	chords []chord
}

// row fills one output row.
func (r *rasterizer) row(res *Result, y int) {
	for x := range r.cfg.Width {
		p := r.cfg.pixelToShape(x, y)
		dist := r.channelDistances(p)
		inside := windingNumber(r.chords, p) != 0

		i := res.PixelOffset(x, y)
		for ch, d := range dist {
			if inside {
				d = -d
			}
			res.Data[i+ch] = DistanceToPixel(d, r.cfg.Range)
		}
	}
}

// channelDistances returns, per channel, the distance to the nearest edge
// whose color includes that channel. A channel no edge contributes to falls
// back to the nearest edge overall.
func (r *rasterizer) channelDistances(p Vec2) [3]float64 {
	best := [3]SignedDistance{Infinite(), Infinite(), Infinite()}
	nearest := Infinite()
	for i := range r.shape.Contours {
		edges := r.shape.Contours[i].Edges
		for j := range edges {
			e := &edges[j]
			sd := e.SignedDistance(p)
			if sd.Less(nearest) {
				nearest = sd
			}
			for ch, c := range channels {
				if e.Color.Has(c) && sd.Less(best[ch]) {
					best[ch] = sd
				}
			}
		}
	}

	var out [3]float64
	for ch := range best {
		if best[ch].IsInfinite() {
			best[ch] = nearest
		}
		out[ch] = best[ch].Distance
	}
	return out
}
