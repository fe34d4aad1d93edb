// Command msdfbake bakes glyphs and vector shapes into MSDF PNG files.
//
// Usage:
//
//	msdfbake -glyphs "ABC" -size 48 -out atlas
//	msdfbake -manifest bake.msdf -preview
//
// Each glyph is written as U+XXXX.png, each manifest shape as <name>.png.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/msdf"
	"github.com/gogpu/msdf/internal/manifest"
	"github.com/gogpu/msdf/internal/preview"
	"github.com/gogpu/msdf/source"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "", "manifest file; flags set explicitly override it")
		fontPath     = flag.String("font", "", "TrueType/OpenType font (default: built-in Go Regular)")
		loader       = flag.String("loader", "sfnt", "outline loader: sfnt or typesetting")
		glyphs       = flag.String("glyphs", "", "glyphs to bake")
		size         = flag.Int("size", 48, "bitmap size in pixels")
		pxRange      = flag.Float64("range", 4, "distance range in pixels")
		padding      = flag.Float64("padding", 2, "padding in pixels")
		out          = flag.String("out", ".", "output directory")
		showPreview  = flag.Bool("preview", false, "print each result to the terminal")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		msdf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m := manifest.Default()
	if *manifestPath != "" {
		loaded, err := manifest.Load(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
		m = *loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			m.Font = *fontPath
		case "glyphs":
			m.Glyphs = []rune(*glyphs)
		case "size":
			m.Size = *size
		case "range":
			m.Range = *pxRange
		case "padding":
			m.Padding = *padding
		case "out":
			m.Out = *out
		}
	})

	var term io.Writer
	if *showPreview {
		term = os.Stdout
	}
	n, err := bake(&m, *loader, term)
	if err != nil {
		log.Fatalf("Failed to bake: %v", err)
	}
	log.Printf("Baked %d bitmaps into %s (%dx%d)\n", n, m.Out, m.Size, m.Size)
}

// bake renders everything m lists and returns the number of files written.
// When term is non-nil a terminal preview of each bitmap is printed to it.
func bake(m *manifest.Manifest, loader string, term io.Writer) (int, error) {
	if err := os.MkdirAll(m.Out, 0o755); err != nil {
		return 0, err
	}

	opts := msdf.DefaultGlyphOptions()
	opts.Width, opts.Height = m.Size, m.Size
	opts.Range = m.Range
	opts.Padding = m.Padding

	written := 0
	save := func(name string, res *msdf.Result) error {
		defer res.Release()
		if err := preview.SavePNG(filepath.Join(m.Out, name), preview.Image(res)); err != nil {
			return err
		}
		if term != nil {
			fmt.Fprintf(term, "%s\n%s\n", name, preview.Terminal(res, preview.ModeMedian))
		}
		written++
		return nil
	}

	if len(m.Glyphs) > 0 {
		font, err := openFont(m.Font, loader)
		if err != nil {
			return written, err
		}
		for _, r := range m.Glyphs {
			g, err := font.Glyph(r)
			if err != nil {
				log.Printf("Skipping %q: %v", r, err)
				continue
			}
			res, err := msdf.Bake(g.Vertices, 1, g.FlipY, opts)
			if err != nil {
				return written, fmt.Errorf("glyph %q: %w", r, err)
			}
			if err := save(fmt.Sprintf("U+%04X.png", r), res); err != nil {
				return written, err
			}
		}
	}

	for _, s := range m.Shapes {
		vs, err := source.ParseSVGPath(s.Path)
		if err != nil {
			return written, fmt.Errorf("shape %q: %w", s.Name, err)
		}
		res, err := msdf.Bake(vs, 1, false, opts)
		if err != nil {
			return written, fmt.Errorf("shape %q: %w", s.Name, err)
		}
		if err := save(s.Name+".png", res); err != nil {
			return written, err
		}
	}
	return written, nil
}

func openFont(path, loader string) (source.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	var (
		font source.Font
		err  error
	)
	switch loader {
	case "sfnt":
		font, err = source.ParseSFNT(data)
	case "typesetting":
		font, err = source.ParseTypesetting(data)
	default:
		return nil, fmt.Errorf("unknown loader %q", loader)
	}
	if err != nil {
		return nil, err
	}
	return font, nil
}
